package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ErrInvalidTable is returned when clearing a table outside the whitelist
var ErrInvalidTable = errors.New("invalid table name")

// ErrInsufficientFunds is returned when a debit would take the balance below zero
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrCompetitionFull is returned when a competition is at capacity
var ErrCompetitionFull = errors.New("competition is full")

// ErrAlreadyJoined is returned when an entry for the competition already exists
var ErrAlreadyJoined = errors.New("already joined")
