package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connection wraps a mongo client scoped to the application database.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to the document database and verifies the
// connection with a ping.
func NewConnection(ctx context.Context, uri, dbName string) (*Connection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Connection{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Collection returns a handle to the named collection.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Close disconnects the underlying client.
func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// Ping verifies the connection is still alive.
func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongo client is nil")
	}
	return c.client.Ping(ctx, nil)
}
