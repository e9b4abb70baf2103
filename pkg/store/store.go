// Package store persists chart documents for the HTTP server.
//
// Two backends are provided:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for real deployments
//
// Records wrap a chart document with identity and timestamps. The store
// never inspects chart contents; validation happens at the API boundary
// before anything reaches a backend.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/orgflow/pkg/chart"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Record is a stored chart with its metadata.
type Record struct {
	ID        string       `json:"id" bson:"_id"`
	Name      string       `json:"name" bson:"name"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
	Chart     *chart.Chart `json:"chart" bson:"chart"`
}

// Store is the interface for chart persistence backends.
type Store interface {
	// Get retrieves a record by ID.
	// Returns ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (*Record, error)

	// Put inserts or replaces a record.
	Put(ctx context.Context, rec *Record) error

	// List returns all records, most recently updated first.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record.
	// Returns ErrNotFound if no record exists.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
