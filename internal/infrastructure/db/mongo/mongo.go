// Package mongo holds the MongoDB connection and the document repositories
// behind the persistence ports.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	appName        = "consultation-api"
	connectTimeout = 10 * time.Second
	defaultTimeout = 10 * time.Second

	// defaultDatabase holds every collection of this service: users,
	// bookings, the service catalog, and contact inquiries.
	defaultDatabase = "planet_nakshatra"
)

// Connect dials MongoDB at uri, confirms the server answers a ping, and
// returns the client together with the service database. An empty database
// name selects defaultDatabase.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	if database == "" {
		database = defaultDatabase
	}

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri).SetAppName(appName))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(database), nil
}
