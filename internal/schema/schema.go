// Package schema creates and checks the relational layout that stores
// Open Food Facts products, their categories and stores, and saved
// substitutions.
package schema

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"openfood/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	bunschema "github.com/uptrace/bun/schema"
)

// declared lists every model backed by a table, in creation order.
// Association tables come last because they reference the others.
var declared = []interface{}{
	(*model.Product)(nil),
	(*model.Store)(nil),
	(*model.Category)(nil),
	(*model.Favorite)(nil),
	(*model.ProductCategory)(nil),
	(*model.ProductStore)(nil),
}

// TableInfo describes a table found in the database.
type TableInfo struct {
	Name    string
	Columns []string
}

// Manager creates and inspects the schema on a bun database.
type Manager struct {
	db     *bun.DB
	logger zerolog.Logger
}

// NewManager creates a schema manager for db.
func NewManager(db *bun.DB, logger zerolog.Logger) *Manager {
	model.Register(db)

	return &Manager{
		db:     db,
		logger: logger.With().Str("component", "schema").Logger(),
	}
}

// Tables returns the names of all declared tables in creation order.
func (m *Manager) Tables() []string {
	names := make([]string, 0, len(declared))
	for _, mdl := range declared {
		names = append(names, m.table(mdl).Name)
	}
	return names
}

// Ensure creates every declared table that does not exist yet and then
// checks that the resulting tables have all declared columns. It is safe
// to call repeatedly. Every failure matches model.ErrSchemaInit.
func (m *Manager) Ensure(ctx context.Context) error {
	logger := m.logger.With().
		Str("run_id", uuid.NewString()).
		Str("dialect", fmt.Sprint(m.db.Dialect().Name())).
		Logger()

	logger.Info().Int("tables", len(declared)).Msg("ensuring schema")

	for _, mdl := range declared {
		name := m.table(mdl).Name

		_, err := m.db.NewCreateTable().
			Model(mdl).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			logger.Error().Err(err).Str("table", name).Msg("failed to create table")
			return fmt.Errorf("%w: create table %s: %w", model.ErrSchemaInit, name, err)
		}

		logger.Debug().Str("table", name).Msg("table ensured")
	}

	if err := m.Verify(ctx); err != nil {
		logger.Error().Err(err).Msg("schema verification failed")
		return err
	}

	logger.Info().Msg("schema ensured successfully")

	return nil
}

// Verify checks that every declared table exists with every declared
// column. Extra columns are allowed.
func (m *Manager) Verify(ctx context.Context) error {
	found, err := m.Inspect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrSchemaInit, err)
	}

	byName := make(map[string]map[string]bool, len(found))
	for _, t := range found {
		cols := make(map[string]bool, len(t.Columns))
		for _, c := range t.Columns {
			cols[strings.ToLower(c)] = true
		}
		byName[strings.ToLower(t.Name)] = cols
	}

	var problems []string
	for _, mdl := range declared {
		table := m.table(mdl)

		cols, ok := byName[strings.ToLower(table.Name)]
		if !ok {
			problems = append(problems, fmt.Sprintf("table %s is missing", table.Name))
			continue
		}

		for _, field := range table.Fields {
			if !cols[strings.ToLower(field.Name)] {
				problems = append(problems, fmt.Sprintf("table %s has no column %s", table.Name, field.Name))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", model.ErrSchemaInit, strings.Join(problems, "; "))
	}

	return nil
}

func (m *Manager) table(mdl interface{}) *bunschema.Table {
	return m.db.Table(reflect.TypeOf(mdl).Elem())
}
