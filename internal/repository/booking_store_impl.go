package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"royal-clinic-backend/internal/domain/entity"
	domainRepo "royal-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type bookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) domainRepo.BookingStore {
	return &bookingStore{db: db}
}

// WithKeyLock serializes the transaction on (doctorName, date) with a Postgres
// advisory lock scoped to the transaction. Distinct keys hash to distinct lock
// ids and do not contend. lock_timeout bounds the wait so a stuck writer
// cannot queue requests indefinitely.
func (s *bookingStore) WithKeyLock(ctx context.Context, doctorName string, date time.Time, fn func(tx domainRepo.BookingTx) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET LOCAL lock_timeout = '5s'").Error; err != nil {
			return fmt.Errorf("set lock_timeout: %w", err)
		}
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", bookingLockKey(doctorName, date)).Error; err != nil {
			return fmt.Errorf("acquire key lock: %w", err)
		}
		return fn(&bookingTx{tx: tx})
	})
	if err != nil && isRetryableConflict(err) {
		return fmt.Errorf("%w: %v", domainRepo.ErrTxConflict, err)
	}
	return err
}

func (s *bookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (s *bookingStore) CountBookings(ctx context.Context, doctorName string, date time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("doctor_name = ? AND appointment_date = ?", doctorName, date).
		Count(&count).Error
	return count, err
}

type bookingTx struct {
	tx *gorm.DB
}

func (t *bookingTx) CountBookings(doctorName string, date time.Time) (int64, error) {
	var count int64
	err := t.tx.Model(&entity.Booking{}).
		Where("doctor_name = ? AND appointment_date = ?", doctorName, date).
		Count(&count).Error
	return count, err
}

func (t *bookingTx) InsertBooking(booking *entity.Booking) error {
	return t.tx.Create(booking).Error
}

func bookingLockKey(doctorName string, date time.Time) string {
	return doctorName + "|" + date.Format("2006-01-02")
}

// isRetryableConflict reports whether err is a transient failure worth
// re-entering the transaction for: serialization failure, deadlock, lock wait
// timeout, or a duplicate token caught by the unique constraint.
func isRetryableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03", "23505":
		return true
	}
	return false
}
