package store

import (
	"context"
	"time"

	"github.com/matzehuels/orgflow/pkg/observability"
)

// Instrument wraps a store so every operation emits observability events.
// The backend name ("memory", "mongo") tags the events so hooks can tell
// deployments apart.
func Instrument(s Store, backend string) Store {
	return &instrumented{inner: s, backend: backend}
}

type instrumented struct {
	inner   Store
	backend string
}

func (s *instrumented) Get(ctx context.Context, id string) (*Record, error) {
	observability.Store().OnOp(ctx, s.backend, "get")
	start := time.Now()
	rec, err := s.inner.Get(ctx, id)
	observability.Store().OnOpComplete(ctx, s.backend, "get", time.Since(start), err)
	return rec, err
}

func (s *instrumented) Put(ctx context.Context, rec *Record) error {
	observability.Store().OnOp(ctx, s.backend, "put")
	start := time.Now()
	err := s.inner.Put(ctx, rec)
	observability.Store().OnOpComplete(ctx, s.backend, "put", time.Since(start), err)
	return err
}

func (s *instrumented) List(ctx context.Context) ([]*Record, error) {
	observability.Store().OnOp(ctx, s.backend, "list")
	start := time.Now()
	recs, err := s.inner.List(ctx)
	observability.Store().OnOpComplete(ctx, s.backend, "list", time.Since(start), err)
	return recs, err
}

func (s *instrumented) Delete(ctx context.Context, id string) error {
	observability.Store().OnOp(ctx, s.backend, "delete")
	start := time.Now()
	err := s.inner.Delete(ctx, id)
	observability.Store().OnOpComplete(ctx, s.backend, "delete", time.Since(start), err)
	return err
}

// Close is passed through untagged; it is lifecycle, not traffic.
func (s *instrumented) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}

var _ Store = (*instrumented)(nil)
