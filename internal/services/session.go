package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Drishanv/ola-rides-insights/internal/models"
	"github.com/Drishanv/ola-rides-insights/internal/store"
	srvErrors "github.com/Drishanv/ola-rides-insights/pkg/errors"
)

// defaultTable is preferred as the active table when present; otherwise the
// first table by name is used.
const defaultTable = "bookings"

// Session owns the live store handle for the UI session. The store path is
// user-editable at runtime: Connect swaps in a handle for the new path and
// closes the previous one. All reads go through the current handle; the last
// interaction wins.
type Session struct {
	mu         sync.Mutex
	id         string
	store      *store.Store
	descriptor models.TableDescriptor
	tables     []string
	views      []string
	sampleRows int
	log        *zap.SugaredLogger
}

func NewSession(sampleRows int) *Session {
	if sampleRows <= 0 {
		sampleRows = 5
	}
	return &Session{
		sampleRows: sampleRows,
		log:        zap.S().Named("session"),
	}
}

// Connect opens the store at path, inspects its schema and makes it the
// current handle. The previous handle, if any, is closed. A path that does not
// resolve to a file yields StoreNotFoundError; a store without tables yields
// EmptySchemaError and the previous handle stays in place.
func (s *Session) Connect(ctx context.Context, path string) error {
	db, err := store.NewDB(path)
	if err != nil {
		return err
	}
	st := store.NewStore(db, path)

	tables, err := st.Inspector().ListTables(ctx)
	if err != nil {
		st.Close()
		return err
	}
	if len(tables) == 0 {
		st.Close()
		return srvErrors.NewEmptySchemaError(path)
	}
	views, err := st.Inspector().ListViews(ctx)
	if err != nil {
		st.Close()
		return err
	}

	active := tables[0]
	for _, t := range tables {
		if t == defaultTable {
			active = t
			break
		}
	}
	desc, err := st.Inspector().Describe(ctx, active, s.sampleRows)
	if err != nil {
		st.Close()
		return err
	}

	s.mu.Lock()
	old := s.store
	s.store = st
	s.descriptor = desc
	s.tables = tables
	s.views = views
	s.id = uuid.NewString()
	s.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			s.log.Warnw("failed to close previous store handle", "error", err)
		}
	}
	s.log.Infow("connected to store",
		"session", s.id, "path", path, "table", active,
		"tables", len(tables), "views", len(views))
	return nil
}

// Current returns the live handle and the active table descriptor, or
// SessionNotConnectedError before the first successful Connect.
func (s *Session) Current() (*store.Store, models.TableDescriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return nil, models.TableDescriptor{}, srvErrors.NewSessionNotConnectedError()
	}
	return s.store, s.descriptor, nil
}

// Schema reports the session's view of the store: path, table and view names,
// and the active table descriptor.
type Schema struct {
	Path       string                 `json:"path"`
	Tables     []string               `json:"tables"`
	Views      []string               `json:"views"`
	Descriptor models.TableDescriptor `json:"descriptor"`
}

func (s *Session) Schema() (*Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return nil, srvErrors.NewSessionNotConnectedError()
	}
	return &Schema{
		Path:       s.store.Path(),
		Tables:     s.tables,
		Views:      s.views,
		Descriptor: s.descriptor,
	}, nil
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Close releases the current handle at session teardown.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}
