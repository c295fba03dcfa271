package store

import (
	"errors"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/extents/internal/persist"
	"github.com/mesh-intelligence/extents/pkg/types"
)

// Save writes every extent under its default resource name, then the Links
// resource with every connected pair in link order.
func (s *Store) Save(g *persist.Gateway) error {
	for _, e := range s.extents {
		if err := e.save(g); err != nil {
			return err
		}
	}
	var rows []types.LinkRow
	for _, b := range s.bindings {
		rows = append(rows, b.rows()...)
	}
	if err := persist.SaveLinks(g, rows); err != nil {
		return err
	}
	s.logger.Info("saved store",
		zap.String("backend", g.Backend().Name()),
		zap.Int("links", len(rows)))
	return nil
}

// Load replaces every registry with its saved snapshot and re-attaches the
// saved links. Nothing changes if any extent fails to load. Link rows naming
// an unknown link or an endpoint that is no longer registered are skipped
// with a warning.
func (s *Store) Load(g *persist.Gateway) error {
	installs := make([]func(), 0, len(s.extents))
	for _, e := range s.extents {
		install, err := e.load(g)
		if err != nil {
			return err
		}
		installs = append(installs, install)
	}
	rows, err := persist.LoadLinks(g)
	if err != nil {
		return err
	}

	s.Reset()
	for _, install := range installs {
		install()
	}

	byName := make(map[string]binding, len(s.bindings))
	for _, b := range s.bindings {
		byName[b.name()] = b
	}
	restored, skipped := 0, 0
	for _, row := range rows {
		b, ok := byName[row.Link]
		if !ok {
			s.logger.Warn("skipping row for unknown link", zap.String("link", row.Link))
			skipped++
			continue
		}
		found, err := b.restore(row)
		switch {
		case errors.Is(err, errDisplaces):
			s.logger.Warn("skipping link row that would displace an earlier one", zap.String("link", row.Link),
				zap.Int("from", row.FromID), zap.Int("to", row.ToID), zap.Error(err))
			skipped++
		case err != nil:
			s.logger.Warn("skipping link row", zap.String("link", row.Link),
				zap.Int("from", row.FromID), zap.Int("to", row.ToID), zap.Error(err))
			skipped++
		case !found:
			s.logger.Warn("skipping link row with missing endpoint", zap.String("link", row.Link),
				zap.Int("from", row.FromID), zap.Int("to", row.ToID))
			skipped++
		default:
			restored++
		}
	}
	s.logger.Info("loaded store",
		zap.String("backend", g.Backend().Name()),
		zap.Int("links", restored),
		zap.Int("skipped", skipped))
	return nil
}

// Check audits the whole graph: every link is symmetric and within its
// bounds, and every linked endpoint is registered in its extent. All
// violations are joined into the returned error.
func (s *Store) Check() error {
	var errs []error
	for _, b := range s.bindings {
		errs = append(errs, b.check()...)
	}
	return errors.Join(errs...)
}
