package persist

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/extents/pkg/types"
)

// Backend stores ordered snapshots of raw JSON records, one per resource.
type Backend interface {
	// Name identifies the backend kind ("jsonl", "sqlite").
	Name() string

	// Location describes where resource is kept, for messages.
	Location(resource string) string

	// Write replaces the snapshot for resource.
	Write(resource string, records []json.RawMessage) error

	// Read returns the latest snapshot for resource in write order. A
	// resource that was never written yields nil and no error.
	Read(resource string) ([]json.RawMessage, error)

	Close() error
}

// Open returns the backend selected by cfg.
func Open(cfg types.Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendJSONL:
		return NewJSONL(cfg.DataDir), nil
	case types.BackendSQLite:
		b, err := OpenSQLite(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}
