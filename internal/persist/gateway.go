// Package persist saves and loads whole extents as ordered snapshots of JSON
// records.
//
// A Gateway pairs a Backend (JSONL files or SQLite) with a logger. Save
// writes one resource per entity type; Load decodes it back, skipping records
// that no longer decode or validate. Associations are not part of a type's
// snapshot; the store persists them separately.
package persist

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/extents/internal/extent"
	"github.com/mesh-intelligence/extents/pkg/types"
)

// EntityPtr is satisfied by *T when *T is an entity.
type EntityPtr[T any] interface {
	*T
	extent.Member
}

// Gateway moves extents between memory and a Backend.
type Gateway struct {
	backend Backend
	logger  *zap.Logger
}

// NewGateway returns a gateway over backend. A nil logger discards output.
func NewGateway(backend Backend, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{backend: backend, logger: logger.Named("persist")}
}

// Backend returns the underlying backend.
func (g *Gateway) Backend() Backend { return g.backend }

// Close closes the backend.
func (g *Gateway) Close() error { return g.backend.Close() }

func resourceFor(typeName, dest string) string {
	if dest == "" {
		return typeName
	}
	return dest
}

// Save writes items, in order, to dest. An empty dest means typeName.
func Save[T any](g *Gateway, typeName, dest string, items []T) error {
	resource := resourceFor(typeName, dest)
	where := g.backend.Location(resource)

	records := make([]json.RawMessage, 0, len(items))
	for i, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("saving %s to %s: encoding record %d: %w", typeName, where, i, err)
		}
		records = append(records, data)
	}
	if err := g.backend.Write(resource, records); err != nil {
		return fmt.Errorf("saving %s to %s: %w", typeName, where, err)
	}
	g.logger.Debug("saved extent",
		zap.String("type", typeName),
		zap.String("location", where),
		zap.Int("records", len(records)))
	return nil
}

// Load reads dest and decodes its records in order. Records that fail to
// decode or validate are skipped with a warning. A resource that was never
// saved yields an empty result.
func Load[T any, PT EntityPtr[T]](g *Gateway, typeName, dest string) ([]PT, error) {
	resource := resourceFor(typeName, dest)
	where := g.backend.Location(resource)

	raw, err := g.backend.Read(resource)
	if err != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", typeName, where, err)
	}

	out := make([]PT, 0, len(raw))
	for i, rec := range raw {
		v := PT(new(T))
		if err := json.Unmarshal(rec, v); err != nil {
			g.logger.Warn("skipping record",
				zap.String("type", typeName),
				zap.String("location", where),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		if err := v.Validate(); err != nil {
			g.logger.Warn("skipping invalid record",
				zap.String("type", typeName),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	g.logger.Debug("loaded extent",
		zap.String("type", typeName),
		zap.String("location", where),
		zap.Int("records", len(out)),
		zap.Int("skipped", len(raw)-len(out)))
	return out, nil
}

// LoadRegistry loads dest into a new registry named typeName. Records the
// registry refuses (for example a repeated identifier) are skipped with a
// warning.
func LoadRegistry[T any, PT EntityPtr[T]](g *Gateway, typeName, dest string, policy extent.Policy) (*extent.Registry[PT], error) {
	items, err := Load[T, PT](g, typeName, dest)
	if err != nil {
		return nil, err
	}
	reg := extent.New[PT](typeName, policy)
	for _, it := range items {
		if err := reg.Register(it); err != nil {
			g.logger.Warn("skipping record", zap.String("type", typeName), zap.Error(err))
		}
	}
	return reg, nil
}

// SaveRegistry saves every member of reg under its name.
func SaveRegistry[T extent.Member](g *Gateway, reg *extent.Registry[T]) error {
	return Save(g, reg.Name(), "", reg.All())
}

// SaveLinks writes link rows to the Links resource.
func SaveLinks(g *Gateway, rows []types.LinkRow) error {
	return Save(g, types.LinksExtent, "", rows)
}

// LoadLinks reads link rows. Rows that do not decode are skipped.
func LoadLinks(g *Gateway) ([]types.LinkRow, error) {
	resource := types.LinksExtent
	raw, err := g.backend.Read(resource)
	if err != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", resource, g.backend.Location(resource), err)
	}
	rows := make([]types.LinkRow, 0, len(raw))
	for i, rec := range raw {
		var row types.LinkRow
		if err := json.Unmarshal(rec, &row); err != nil || row.Link == "" {
			g.logger.Warn("skipping link row", zap.Int("index", i), zap.Error(err))
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
