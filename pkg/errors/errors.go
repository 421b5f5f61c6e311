// Package errors defines the typed service errors surfaced by ola-rides-insights.
//
// Five error kinds exist, matching the failure modes of a read-only dashboard:
//
//	StoreNotFoundError      - the configured store path does not resolve to a file
//	EmptySchemaError        - the store contains no tables; fatal for the session
//	StatementRejectedError  - a submitted statement is not a SELECT; no store access
//	ExecutionError          - the engine rejected a statement; message shown verbatim
//	ReportUnavailableError  - no report renderer strategy succeeded
//
// Nothing is retried automatically. Every error is either a hard stop for the
// current render cycle or a scoped inline message.
package errors

import (
	"errors"
	"fmt"
)

// StoreNotFoundError is raised when the configured path does not resolve to an
// existing store file.
type StoreNotFoundError struct {
	Path string
}

func NewStoreNotFoundError(path string) *StoreNotFoundError {
	return &StoreNotFoundError{Path: path}
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("database not found at %s", e.Path)
}

func IsStoreNotFoundError(err error) bool {
	var t *StoreNotFoundError
	return errors.As(err, &t)
}

// EmptySchemaError is raised when the store holds no tables at all.
type EmptySchemaError struct {
	Path string
}

func NewEmptySchemaError(path string) *EmptySchemaError {
	return &EmptySchemaError{Path: path}
}

func (e *EmptySchemaError) Error() string {
	return fmt.Sprintf("no tables found in the database at %s", e.Path)
}

func IsEmptySchemaError(err error) bool {
	var t *EmptySchemaError
	return errors.As(err, &t)
}

// StatementRejectedError is raised before execution when a submitted statement
// is not a SELECT. The store is never touched.
type StatementRejectedError struct {
	Statement string
}

func NewStatementRejectedError(stmt string) *StatementRejectedError {
	return &StatementRejectedError{Statement: stmt}
}

func (e *StatementRejectedError) Error() string {
	return "only SELECT statements are allowed"
}

func IsStatementRejectedError(err error) bool {
	var t *StatementRejectedError
	return errors.As(err, &t)
}

// ExecutionError wraps an engine error for a syntactically or semantically
// invalid statement. The engine message is surfaced verbatim.
type ExecutionError struct {
	Err error
}

func NewExecutionError(err error) *ExecutionError {
	return &ExecutionError{Err: err}
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("query error: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func IsExecutionError(err error) bool {
	var t *ExecutionError
	return errors.As(err, &t)
}

// ReportUnavailableError is raised when no renderer strategy succeeded and no
// report file is present. Informational, never fatal.
type ReportUnavailableError struct {
	Path string
}

func NewReportUnavailableError(path string) *ReportUnavailableError {
	return &ReportUnavailableError{Path: path}
}

func (e *ReportUnavailableError) Error() string {
	return fmt.Sprintf("report not available at %s", e.Path)
}

func IsReportUnavailableError(err error) bool {
	var t *ReportUnavailableError
	return errors.As(err, &t)
}

// SessionNotConnectedError is raised when an operation needs a store handle but
// the session has not connected yet.
type SessionNotConnectedError struct{}

func NewSessionNotConnectedError() *SessionNotConnectedError {
	return &SessionNotConnectedError{}
}

func (e *SessionNotConnectedError) Error() string {
	return "not connected to a store"
}

func IsSessionNotConnectedError(err error) bool {
	var t *SessionNotConnectedError
	return errors.As(err, &t)
}
