package services

import (
	"context"

	"github.com/Drishanv/ola-rides-insights/internal/models"
	"github.com/Drishanv/ola-rides-insights/internal/store"
)

// Runner backs the SQL Runner tab: the predefined query catalog and ad-hoc
// read-only statements.
type Runner struct {
	session *Session
}

func NewRunner(session *Session) *Runner {
	return &Runner{session: session}
}

// Catalog resolves the predefined queries against the live view list. A view
// with the expected name shadows its inline fallback.
func (r *Runner) Catalog(ctx context.Context) ([]store.CatalogEntry, error) {
	st, _, err := r.session.Current()
	if err != nil {
		return nil, err
	}
	return st.Catalog().Resolve(ctx)
}

// Run executes a user-submitted statement. The SELECT-only guard sits in the
// executor, before any store access; engine errors come back verbatim.
func (r *Runner) Run(ctx context.Context, sqlText string) (*models.ResultTable, error) {
	st, _, err := r.session.Current()
	if err != nil {
		return nil, err
	}
	return st.Executor().Execute(ctx, sqlText)
}
