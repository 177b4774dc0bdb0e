package domain

import (
	"errors"
	"time"
)

// OfferingStatus controls public visibility of a catalog entry.
type OfferingStatus string

const (
	OfferingActive   OfferingStatus = "ACTIVE"
	OfferingInactive OfferingStatus = "INACTIVE"
)

var (
	ErrOfferingNotFound = errors.New("service not found")
	ErrSlugTaken        = errors.New("service with this slug already exists")
)

// Offering is one entry in the consultation service catalog.
type Offering struct {
	ID               string         `json:"id" bson:"_id"`
	Title            string         `json:"title" bson:"title"`
	Slug             string         `json:"slug" bson:"slug"`
	Description      string         `json:"description" bson:"description"`
	ShortDescription string         `json:"short_description,omitempty" bson:"short_description,omitempty"`
	Category         string         `json:"category" bson:"category"`
	Status           OfferingStatus `json:"status" bson:"status"`
	Keywords         []string       `json:"keywords,omitempty" bson:"keywords,omitempty"`
	Features         []string       `json:"features,omitempty" bson:"features,omitempty"`
	Duration         string         `json:"duration,omitempty" bson:"duration,omitempty"`
	Price            float64        `json:"price,omitempty" bson:"price,omitempty"`
	Currency         string         `json:"currency,omitempty" bson:"currency,omitempty"`
	ImageURL         string         `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IconURL          string         `json:"icon_url,omitempty" bson:"icon_url,omitempty"`
	DisplayOrder     int            `json:"display_order" bson:"display_order"`
	Featured         bool           `json:"featured" bson:"featured"`
	CreatedAt        time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" bson:"updated_at"`
}
