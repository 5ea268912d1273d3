package persistence

import (
	"context"
	"time"
)

// UserLockRepository serializes payouts per user. Two concurrent payout
// requests for the same user must not both reach the payment provider; the
// lock lives in the database so it holds across replicas, and it expires so
// a crashed worker cannot wedge a user forever.
type UserLockRepository interface {
	// AcquireLock attempts to acquire a payout lock on the user.
	// The lock expires after the given duration.
	//
	// Possible errors:
	// - ErrUserLocked: If user is already locked by another operation
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, userID uint64, duration time.Duration) error

	// ReleaseLock releases a previously acquired lock. Safe to call when no
	// lock is held.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ReleaseLock(ctx context.Context, userID uint64) error

	// CleanupExpiredLocks removes locks whose expiry has passed, run at
	// startup so stale locks from a crashed process do not linger.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CleanupExpiredLocks(ctx context.Context) error
}
