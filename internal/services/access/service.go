package access

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ewhitmore/scorepad-go/internal/dependencies/clock"
	"github.com/ewhitmore/scorepad-go/internal/dependencies/random"
	"github.com/ewhitmore/scorepad-go/internal/model"
)

// Errors
var (
	ErrInvalidPasscode = errors.New("invalid table passcode")
	ErrInvalidToken    = errors.New("invalid or expired table key")
	ErrWrongTable      = errors.New("table key is for a different table")
)

const (
	tokenLength   = 32
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Grant is a bearer key bound to one table; it authorizes commands there
type Grant struct {
	Token     string
	Table     model.TableCode
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service issues and validates table keys. A table created with a passcode
// requires that passcode to claim a key; open tables hand keys to anyone
// with the code.
type Service struct {
	clock  clock.Clock
	random random.Random

	mu     sync.RWMutex
	grants map[string]*Grant

	tokenDuration time.Duration
}

// Config holds configuration for the access service
type Config struct {
	TokenDuration time.Duration
}

// DefaultConfig returns default access configuration
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// New creates a new access Service
func New(clock clock.Clock, random random.Random, cfg Config) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}
	return &Service{
		clock:         clock,
		random:        random,
		grants:        make(map[string]*Grant),
		tokenDuration: cfg.TokenDuration,
	}
}

// HashPasscode returns the bcrypt hash to store on a session, or empty for
// an open table
func (s *Service) HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Issue creates a key for a table without checking the passcode; used when
// the table is first created
func (s *Service) Issue(code model.TableCode) *Grant {
	return s.createGrant(code)
}

// Claim verifies the passcode (if the table has one) and issues a key
func (s *Service) Claim(session *model.Session, passcode string) (*Grant, error) {
	if session.PasscodeHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(session.PasscodeHash), []byte(passcode)); err != nil {
			return nil, ErrInvalidPasscode
		}
	}
	return s.createGrant(session.Code), nil
}

// Validate checks a token and returns its grant
func (s *Service) Validate(token string) (*Grant, error) {
	s.mu.RLock()
	grant, ok := s.grants[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidToken
	}
	if s.clock.Now().After(grant.ExpiresAt) {
		s.Revoke(token)
		return nil, ErrInvalidToken
	}
	return grant, nil
}

// ValidateFor checks a token and that it is bound to the given table
func (s *Service) ValidateFor(token string, code model.TableCode) (*Grant, error) {
	grant, err := s.Validate(token)
	if err != nil {
		return nil, err
	}
	if grant.Table != code {
		return nil, ErrWrongTable
	}
	return grant, nil
}

// Revoke invalidates a token
func (s *Service) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.grants, token)
}

func (s *Service) createGrant(code model.TableCode) *Grant {
	now := s.clock.Now()
	grant := &Grant{
		Token:     s.random.String(tokenLength, tokenAlphabet),
		Table:     code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenDuration),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[grant.Token] = grant
	return grant
}
