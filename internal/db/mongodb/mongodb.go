package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AI2HU/mongoping/internal/config"
	"github.com/AI2HU/mongoping/internal/db"
)

const adminDatabase = "admin"

// MongoDB implements db.Checker for MongoDB
type MongoDB struct {
	client *mongo.Client
	config *config.Config
}

var _ db.Checker = (*MongoDB)(nil)

// New creates a new MongoDB checker instance
func New(cfg *config.Config) *MongoDB {
	return &MongoDB{
		config: cfg,
	}
}

// clientOptions builds the driver options. The selection timeout is applied
// after the URI so it wins over any serverSelectionTimeoutMS in the string.
func (m *MongoDB) clientOptions() *options.ClientOptions {
	opts := options.Client().ApplyURI(m.config.URI)
	if m.config.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(m.config.ServerSelectionTimeout)
	}
	if m.config.AppName != "" {
		opts.SetAppName(m.config.AppName)
	}
	return opts
}

// Connect creates the client. It does not wait for a server to be selected,
// so it only fails on a malformed URI or invalid options.
func (m *MongoDB) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, m.clientOptions())
	if err != nil {
		return fmt.Errorf("invalid client options: %w", err)
	}

	m.client = client
	return nil
}

// Check runs isMaster against the admin database. It is cheap and does not
// require authentication.
func (m *MongoDB) Check(ctx context.Context) (*db.HelloResult, error) {
	if m.client == nil {
		return nil, fmt.Errorf("not connected to database")
	}

	var result db.HelloResult
	cmd := bson.D{{Key: "isMaster", Value: 1}}
	if err := m.client.Database(adminDatabase).RunCommand(ctx, cmd).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}
