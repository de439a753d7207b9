// Package db opens the configured document or relational store and hands back
// the user and record stores built on it.
package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"healthtrack/internal/auth"
	"healthtrack/internal/records"
)

var ErrUnsupportedScheme = errors.New("unsupported store uri scheme")

type Stores struct {
	Users   auth.Store
	Records records.Store
	// Backend names the selected backend: mongodb, postgres or memory.
	Backend string

	close func(ctx context.Context) error
}

// Close releases the underlying connection. It is safe to call on memory stores.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open picks the backend from the URI scheme. database names the Mongo
// database and is ignored by the other backends.
func Open(ctx context.Context, uri, database string) (*Stores, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parse store uri: %w", err)
	}
	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return openMongo(ctx, uri, database)
	case "postgres", "postgresql":
		return openPostgres(ctx, uri)
	case "memory":
		return OpenMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func OpenMemory() *Stores {
	return &Stores{
		Users:   auth.NewMemoryStore(),
		Records: records.NewMemoryStore(),
		Backend: "memory",
	}
}
