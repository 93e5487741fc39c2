package storage

import (
	"context"

	"github.com/ewhitmore/scorepad-go/internal/model"
)

// Storage defines the interface for session persistence
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, code model.TableCode) (*model.Session, error)
	DeleteSession(ctx context.Context, code model.TableCode) error
	SessionExists(ctx context.Context, code model.TableCode) (bool, error)
}
