package repository

import (
	"database/sql"

	"github.com/unclebandit/crm-viewer/internal/model"
)

// zonedColumn reports whether column idx of rows stores a time zone.
func zonedColumn(rows *sql.Rows, idx int) (bool, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return false, err
	}
	if idx >= len(types) {
		return false, nil
	}
	return model.ZonedColumnType(types[idx].DatabaseTypeName()), nil
}
