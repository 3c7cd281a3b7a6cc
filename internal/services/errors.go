package services

import "github.com/abrezinsky/arena/internal/errors"

// Domain rule violations. They match with errors.Is and map to HTTP
// statuses through their kind.
var (
	ErrCompetitionClosed   = errors.Precondition("competition is no longer accepting entries")
	ErrCompetitionFull     = errors.Conflict("competition is full")
	ErrAlreadyJoined       = errors.Conflict("already joined this competition")
	ErrCompetitionNotFound = errors.NotFound("competition not found")

	ErrInvalidAmount       = errors.Validation("amount must be a positive number")
	ErrInsufficientBalance = errors.Validation("amount exceeds available balance")
	Err2FARequired         = errors.Validation("two-factor confirmation is required")
	ErrInvalidMethod       = errors.Validation("payment method must be card or bank")
	ErrTransactionNotFound = errors.NotFound("transaction not found")
	ErrTransactionSettled  = errors.Precondition("transaction is already completed")

	ErrEntryNotFound    = errors.NotFound("tournament entry not found")
	ErrInvalidEntry     = errors.Validation("rank and prize must not be negative")
	ErrCancelReason     = errors.Validation("a canceled entry needs a reason")
	ErrInvalidEntryKind = errors.Validation("unknown tournament status")

	ErrInvalidTickInterval = errors.Validation("tick interval must be between 250ms and 60s")
	ErrNoTablesSpecified   = errors.Validation("no tables specified")
	ErrBaseURLNotSet       = errors.Precondition("base_url not configured")
)
