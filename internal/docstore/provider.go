// Package docstore is the document-store Connection Provider and Query Executor.
package docstore

import (
	"context"
	"time"

	"whatabook/internal/config"
	"whatabook/internal/dberr"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection is the subset of *mongo.Collection the executor needs.
type Collection interface {
	Find(ctx context.Context, filter any, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update any, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

var _ Collection = (*mongo.Collection)(nil)

type Provider struct {
	client   *mongo.Client
	db       *mongo.Database
	timeout  time.Duration
	resolver func(name string) Collection
}

// Open validates the settings and creates a client. The driver connects lazily,
// so nothing is dialed until the first operation or Ping.
func Open(ctx context.Context, s config.Settings) (*Provider, error) {
	const op = "docstore.Open"

	if err := s.ValidateDocument(); err != nil {
		return nil, err
	}

	timeout := s.Connection.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	opts := options.Client().
		ApplyURI(s.Document.URL).
		SetAuth(options.Credential{Username: s.Secrets.User, Password: s.Secrets.Password}).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if err := opts.Validate(); err != nil {
		return nil, dberr.Configuration(op, "document url: %v", err)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, classify(op, err, dberr.ErrConfiguration)
	}

	db := client.Database(s.Document.Database)
	p := &Provider{client: client, db: db, timeout: timeout}
	p.resolver = func(name string) Collection { return db.Collection(name) }

	log.Debug().Str("url", config.RedactDSN(s.Document.URL)).Str("database", s.Document.Database).Msg("docstore: provider opened")
	return p, nil
}

// NewProvider builds a Provider over a collection resolver. It is used by tests
// and by callers that already hold a client.
func NewProvider(resolver func(name string) Collection, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Provider{resolver: resolver, timeout: timeout}
}

// Collection returns the named collection of the configured database.
func (p *Provider) Collection(name string) Collection {
	return p.resolver(name)
}

// Ping checks that the deployment is reachable with the configured credentials.
func (p *Provider) Ping(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.Ping(ctx, readpref.Primary()); err != nil {
		return classify("docstore.Ping", err, dberr.ErrConnectivity)
	}
	return nil
}

func (p *Provider) Close(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	if err := p.client.Disconnect(ctx); err != nil {
		return classify("docstore.Close", err, dberr.ErrConnectivity)
	}
	log.Debug().Msg("docstore: provider closed")
	return nil
}
