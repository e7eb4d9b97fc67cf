package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrConflictRetriesExhausted is returned when a transaction kept hitting
// transient lock or serialization conflicts.
var ErrConflictRetriesExhausted = errors.New("repository: conflicting concurrent update, retries exhausted")

const (
	maxConflictRetries    = 5
	conflictRetryInterval = 25 * time.Millisecond
)

// withConflictRetry runs fn, retrying a bounded number of times when the
// store reports a transient lock or serialization conflict. Domain errors
// pass through untouched; a still-conflicting transaction surfaces as
// ErrConflictRetriesExhausted rather than ever skipping a capacity check.
func withConflictRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = fn()
		if err == nil || !isRetryableConflict(err) {
			return err
		}
		time.Sleep(conflictRetryInterval)
	}
	return ErrConflictRetriesExhausted
}

func isRetryableConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access")
}

// lockForUpdate takes a row-level write lock on the queried rows. sqlite has
// no FOR UPDATE syntax but serializes writing transactions, so the invariant
// still holds there without the clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
