package repository

import (
	"context"
	"errors"
	"time"

	"royal-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTxConflict marks a transient transaction failure (serialization conflict,
// duplicate token, lock wait timeout). Callers may re-enter WithKeyLock; the
// failed attempt left no row behind.
var ErrTxConflict = errors.New("booking transaction conflict")

// BookingTx is the view of the store inside a serialized booking transaction.
// Counts reflect committed rows only; an insert becomes visible on commit.
type BookingTx interface {
	CountBookings(doctorName string, date time.Time) (int64, error)
	InsertBooking(booking *entity.Booking) error
}

// BookingStore is the transactional persistence contract the token allocator
// depends on. Implementations must guarantee that two concurrent WithKeyLock
// calls for the same (doctorName, date) cannot both observe the same count and
// both commit, while calls for distinct keys proceed in parallel.
type BookingStore interface {
	// WithKeyLock runs fn inside a transaction serialized on (doctorName, date).
	// fn returning an error rolls the transaction back.
	WithKeyLock(ctx context.Context, doctorName string, date time.Time, fn func(tx BookingTx) error) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	CountBookings(ctx context.Context, doctorName string, date time.Time) (int64, error)
}
