package store

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/extents/internal/association"
	"github.com/mesh-intelligence/extents/internal/extent"
	"github.com/mesh-intelligence/extents/internal/persist"
	"github.com/mesh-intelligence/extents/pkg/types"
)

// errDisplaces marks a saved link row that conflicts with an earlier row on
// a single-valued side. The earlier row wins.
var errDisplaces = errors.New("row conflicts with an earlier link")

// extentOps is the type-erased view of one registry used for bulk
// operations.
type extentOps interface {
	name() string
	size() int
	clear()
	records() []any
	save(g *persist.Gateway) error
	// load reads the extent and returns a function that installs it.
	load(g *persist.Gateway) (func(), error)
}

type typedExtent[T any, PT persist.EntityPtr[T]] struct {
	reg *extent.Registry[PT]
}

func extentOf[T any, PT persist.EntityPtr[T]](reg *extent.Registry[PT]) extentOps {
	return typedExtent[T, PT]{reg: reg}
}

func (e typedExtent[T, PT]) name() string { return e.reg.Name() }
func (e typedExtent[T, PT]) size() int    { return e.reg.Len() }
func (e typedExtent[T, PT]) clear()       { e.reg.Clear() }

func (e typedExtent[T, PT]) records() []any {
	all := e.reg.All()
	out := make([]any, len(all))
	for i, v := range all {
		out[i] = v
	}
	return out
}

func (e typedExtent[T, PT]) save(g *persist.Gateway) error {
	return persist.SaveRegistry(g, e.reg)
}

func (e typedExtent[T, PT]) load(g *persist.Gateway) (func(), error) {
	loaded, err := persist.LoadRegistry[T, PT](g, e.reg.Name(), "", e.reg.Policy())
	if err != nil {
		return nil, err
	}
	return func() {
		// Members were already admitted by an identical registry.
		_ = e.reg.Replace(loaded.All())
	}, nil
}

// binding ties a link to the registries of its two endpoint types so it can
// be persisted by identifier and audited.
type binding interface {
	name() string
	size() int
	clear()
	rows() []types.LinkRow
	// restore connects the endpoints named by row. It reports false when
	// either endpoint is not registered, and errDisplaces when the row
	// would drop an earlier pair from a single-valued side.
	restore(row types.LinkRow) (bool, error)
	check() []error
}

type typedBinding[A, B extent.Member] struct {
	link *association.Link[A, B]
	from *extent.Registry[A]
	to   *extent.Registry[B]
}

func bind[A, B extent.Member](link *association.Link[A, B], from *extent.Registry[A], to *extent.Registry[B]) binding {
	return typedBinding[A, B]{link: link, from: from, to: to}
}

func (b typedBinding[A, B]) name() string { return b.link.Name() }
func (b typedBinding[A, B]) size() int    { return b.link.Len() }
func (b typedBinding[A, B]) clear()       { b.link.Clear() }

func (b typedBinding[A, B]) rows() []types.LinkRow {
	pairs := b.link.Pairs()
	out := make([]types.LinkRow, len(pairs))
	for i, p := range pairs {
		out[i] = types.LinkRow{Link: b.link.Name(), FromID: p.From.ID(), ToID: p.To.ID()}
	}
	return out
}

func (b typedBinding[A, B]) restore(row types.LinkRow) (bool, error) {
	from, ok := b.from.Get(row.FromID)
	if !ok {
		return false, nil
	}
	to, ok := b.to.Get(row.ToID)
	if !ok {
		return false, nil
	}
	if b.link.Displaces(from, to) {
		return true, fmt.Errorf("%s: %s %d to %s %d: %w",
			b.link.Name(), b.from.Name(), from.ID(), b.to.Name(), to.ID(), errDisplaces)
	}
	_, err := b.link.Connect(from, to)
	return true, err
}

func (b typedBinding[A, B]) check() []error {
	var errs []error
	if err := b.link.Check(); err != nil {
		errs = append(errs, err)
	}
	for _, p := range b.link.Pairs() {
		if !b.from.Contains(p.From) {
			errs = append(errs, fmt.Errorf("%s: %s %d: %w",
				b.link.Name(), b.from.Name(), p.From.ID(), types.ErrNotRegistered))
		}
		if !b.to.Contains(p.To) {
			errs = append(errs, fmt.Errorf("%s: %s %d: %w",
				b.link.Name(), b.to.Name(), p.To.ID(), types.ErrNotRegistered))
		}
	}
	return errs
}
