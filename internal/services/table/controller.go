package table

import (
	"context"
	"log/slog"

	"github.com/ewhitmore/scorepad-go/internal/dependencies/clock"
	"github.com/ewhitmore/scorepad-go/internal/dependencies/random"
	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/storage"
)

const (
	// TableCodeLength is the length of generated table codes
	TableCodeLength = 6
	// TableCodeAlphabet is the characters used in table codes (avoid confusing chars)
	TableCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller owns table sessions: it creates them, loads them from storage,
// and applies commands through the reducer.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new table Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateTable creates a new session in setup with a fresh table code.
// passcodeHash is optional; when set, command access requires the passcode.
func (c *Controller) CreateTable(ctx context.Context, cfg model.TableConfig, passcodeHash string) (*model.Session, error) {
	if cfg.MaxPlayers < model.MinPlayers {
		cfg.MaxPlayers = model.DefaultTableConfig().MaxPlayers
	}

	// Generate unique table code
	var code model.TableCode
	for {
		code = model.TableCode(c.random.String(TableCodeLength, TableCodeAlphabet))
		exists, err := c.storage.SessionExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	session := &model.Session{
		Code:         code,
		Status:       model.SessionStatusSetup,
		Config:       cfg,
		PasscodeHash: passcodeHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("table created",
		slog.String("table", string(code)),
		slog.Int("max_players", cfg.MaxPlayers),
		slog.Bool("keep_roster", cfg.KeepRoster),
	)

	return session, nil
}

// GetTable retrieves a session by table code
func (c *Controller) GetTable(ctx context.Context, code model.TableCode) (*model.Session, error) {
	return c.storage.GetSession(ctx, code)
}

// DeleteTable removes a session entirely
func (c *Controller) DeleteTable(ctx context.Context, code model.TableCode) error {
	if err := c.storage.DeleteSession(ctx, code); err != nil {
		return err
	}
	c.logger.Info("table deleted", slog.String("table", string(code)))
	return nil
}

// Dispatch loads the session, applies one command, and persists the result.
// A rejected command leaves the stored session untouched.
func (c *Controller) Dispatch(ctx context.Context, code model.TableCode, cmd Command) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	next, err := Apply(session, cmd)
	if err != nil {
		return nil, err
	}

	next.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, next); err != nil {
		c.logger.Error("failed to save session",
			slog.String("table", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("command applied",
		slog.String("table", string(code)),
		slog.String("command", cmd.Name()),
		slog.String("status", string(next.Status)),
	)

	return next, nil
}

// AddPlayer appends a player to the roster during setup
func (c *Controller) AddPlayer(ctx context.Context, code model.TableCode, name string) (*model.Session, error) {
	return c.Dispatch(ctx, code, AddPlayer{PlayerName: name})
}

// RemovePlayer removes the player at index during setup
func (c *Controller) RemovePlayer(ctx context.Context, code model.TableCode, index int) (*model.Session, error) {
	return c.Dispatch(ctx, code, RemovePlayer{Index: index})
}

// StartGame freezes the roster and begins play
func (c *Controller) StartGame(ctx context.Context, code model.TableCode) (*model.Session, error) {
	return c.Dispatch(ctx, code, StartGame{})
}

// SetDie enters one die's face value into the active hand
func (c *Controller) SetDie(ctx context.Context, code model.TableCode, die, value int) (*model.Session, error) {
	return c.Dispatch(ctx, code, SetDie{Die: die, Value: value})
}

// ClearDice resets the active hand
func (c *Controller) ClearDice(ctx context.Context, code model.TableCode) (*model.Session, error) {
	return c.Dispatch(ctx, code, ClearDice{})
}

// SelectCategory scores the entered hand and advances the turn
func (c *Controller) SelectCategory(ctx context.Context, code model.TableCode, category model.Category) (*model.Session, error) {
	return c.Dispatch(ctx, code, SelectCategory{Category: category})
}

// EndGame force-finishes the game
func (c *Controller) EndGame(ctx context.Context, code model.TableCode) (*model.Session, error) {
	return c.Dispatch(ctx, code, EndGame{})
}

// ResetGame returns a finished table to setup
func (c *Controller) ResetGame(ctx context.Context, code model.TableCode) (*model.Session, error) {
	return c.Dispatch(ctx, code, ResetGame{})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateTable(ctx context.Context, cfg model.TableConfig, passcodeHash string) (*model.Session, error)
	GetTable(ctx context.Context, code model.TableCode) (*model.Session, error)
	DeleteTable(ctx context.Context, code model.TableCode) error
	Dispatch(ctx context.Context, code model.TableCode, cmd Command) (*model.Session, error)
}

var _ ControllerInterface = (*Controller)(nil)
