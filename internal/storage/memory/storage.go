package memory

import (
	"context"
	"sync"

	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu       sync.RWMutex
	sessions map[model.TableCode]*model.Session
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.TableCode]*model.Session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// SaveSession stores a deep copy so later mutations cannot leak in
func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Code] = session.Clone()
	return nil
}

func (s *Storage) GetSession(ctx context.Context, code model.TableCode) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[code]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	return session.Clone(), nil
}

func (s *Storage) DeleteSession(ctx context.Context, code model.TableCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, code)
	return nil
}

func (s *Storage) SessionExists(ctx context.Context, code model.TableCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[code]
	return ok, nil
}
