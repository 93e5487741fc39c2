package model

import "errors"

// Common errors used across the application
var (
	// Table errors
	ErrTableNotFound = errors.New("table not found")

	// Roster errors
	ErrRosterFull     = errors.New("roster is full")
	ErrRosterTooSmall = errors.New("not enough players to start")
	ErrEmptyName      = errors.New("player name must not be empty")
	ErrDuplicateName  = errors.New("player name is already taken")
	ErrPlayerNotFound = errors.New("player not found")

	// Move errors
	ErrWrongPhase      = errors.New("command not valid in current phase")
	ErrIncompleteHand  = errors.New("all five dice must be entered")
	ErrCategoryTaken   = errors.New("category is already assigned")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDieIndex = errors.New("die index must be 0-4")
	ErrInvalidDie      = errors.New("die value must be 1-6")
	ErrGameFinished    = errors.New("game is already finished")
)
