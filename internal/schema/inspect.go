package schema

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

type columnRow struct {
	TableName  string `bun:"table_name"`
	ColumnName string `bun:"column_name"`
}

// Inspect returns the declared tables that exist in the database, sorted by
// name, with their columns in ordinal order. Tables that do not exist are
// left out.
func (m *Manager) Inspect(ctx context.Context) ([]TableInfo, error) {
	query, err := inspectQuery(m.db.Dialect().Name())
	if err != nil {
		return nil, err
	}

	var rows []columnRow
	if err := m.db.NewRaw(query, bun.In(m.Tables())).Scan(ctx, &rows); err != nil {
		m.logger.Error().Err(err).Msg("failed to inspect schema")
		return nil, fmt.Errorf("failed to inspect schema: %w", err)
	}

	var tables []TableInfo
	for _, r := range rows {
		if n := len(tables); n == 0 || tables[n-1].Name != r.TableName {
			tables = append(tables, TableInfo{Name: r.TableName})
		}
		last := &tables[len(tables)-1]
		last.Columns = append(last.Columns, r.ColumnName)
	}

	return tables, nil
}

func inspectQuery(name dialect.Name) (string, error) {
	switch name {
	case dialect.PG:
		return `
			SELECT table_name AS table_name, column_name AS column_name
			FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name IN (?)
			ORDER BY table_name, ordinal_position
		`, nil
	case dialect.MySQL:
		return `
			SELECT table_name AS table_name, column_name AS column_name
			FROM information_schema.columns
			WHERE table_schema = DATABASE() AND table_name IN (?)
			ORDER BY table_name, ordinal_position
		`, nil
	case dialect.SQLite:
		return `
			SELECT m.name AS table_name, p.name AS column_name
			FROM sqlite_master AS m
			JOIN pragma_table_info(m.name) AS p
			WHERE m.type = 'table' AND m.name IN (?)
			ORDER BY m.name, p.cid
		`, nil
	default:
		return "", fmt.Errorf("schema inspection is not supported for dialect %v", name)
	}
}
