package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Drishanv/ola-rides-insights/internal/models"
	srvErrors "github.com/Drishanv/ola-rides-insights/pkg/errors"
)

// Executor runs read-only statements against the store and materializes the
// rows. Anything that is not a SELECT is rejected before the store is touched.
type Executor struct {
	db *sql.DB
}

func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// IsSelect reports whether the statement, trimmed and lower-cased, starts with
// the literal "select".
func IsSelect(sqlText string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(sqlText)), "select")
}

// Execute runs sqlText with the given bound parameters and returns the result
// table. Engine errors are surfaced verbatim inside an ExecutionError; nothing
// is retried or repaired.
func (e *Executor) Execute(ctx context.Context, sqlText string, args ...any) (*models.ResultTable, error) {
	if !IsSelect(sqlText) {
		return nil, srvErrors.NewStatementRejectedError(sqlText)
	}

	rows, err := e.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, srvErrors.NewExecutionError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, srvErrors.NewExecutionError(err)
	}

	result := &models.ResultTable{
		Columns: columns,
		Rows:    make([][]any, 0),
	}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, srvErrors.NewExecutionError(err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, srvErrors.NewExecutionError(err)
	}
	return result, nil
}
