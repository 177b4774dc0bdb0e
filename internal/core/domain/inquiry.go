package domain

import "time"

const (
	InquirySourceWebsite = "WEBSITE"

	InquiryStatusNew      = "NEW"
	InquiryPriorityNormal = "NORMAL"
)

// Inquiry is a contact-form submission. IPAddress and UserAgent are captured
// for abuse triage and never echoed back through the public API.
type Inquiry struct {
	ID        string    `json:"id" bson:"_id"`
	Reference string    `json:"reference" bson:"reference"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	Priority  string    `json:"priority" bson:"priority"`
	Source    string    `json:"-" bson:"source"`
	IPAddress string    `json:"-" bson:"ip_address,omitempty"`
	UserAgent string    `json:"-" bson:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Testimonial is a curated client quote shown on the marketing site.
type Testimonial struct {
	ID      string `json:"id"`
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Company string `json:"company"`
}
