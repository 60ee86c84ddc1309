package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"royal-clinic-backend/internal/converter"
	"royal-clinic-backend/internal/delivery/dto"
	"royal-clinic-backend/internal/domain/entity"
	"royal-clinic-backend/internal/domain/repository"
	"royal-clinic-backend/internal/service"
	"royal-clinic-backend/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrDayUnavailable   = errors.New("doctor is not available on this day")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)

// CapacityExceededError is returned when a booking would exceed the daily
// token ceiling for its (doctor, date) key. Nothing is written to the store.
type CapacityExceededError struct {
	Limit int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("daily token limit (%d) reached for this doctor", e.Limit)
}

const (
	dateLayout = "2006-01-02"

	// maxAllocateAttempts bounds the re-entry of the allocation transaction
	// after a transient store conflict.
	maxAllocateAttempts = 3
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingDetailResponse, error)
	GetReceipt(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type bookingUsecase struct {
	log      *logrus.Logger
	store    repository.BookingStore
	catalog  *service.ScheduleCatalog
	capacity service.CapacityPolicy
	cache    service.TokenCache
	receipt  *service.ReceiptService
}

func NewBookingUsecase(
	log *logrus.Logger,
	store repository.BookingStore,
	catalog *service.ScheduleCatalog,
	capacity service.CapacityPolicy,
	cache service.TokenCache,
	receipt *service.ReceiptService,
) BookingUsecase {
	return &bookingUsecase{
		log:      log,
		store:    store,
		catalog:  catalog,
		capacity: capacity,
		cache:    cache,
		receipt:  receipt,
	}
}

// CreateBooking validates the request against the schedule catalog and then
// allocates the next token inside a per-key serialized store transaction.
//
// Validation happens strictly before any store access: an unparseable date,
// an unknown doctor, or an off-day never consumes a key lock or a count read.
// Transient store conflicts re-enter the transaction up to maxAllocateAttempts
// times; a failed attempt leaves no row behind, so re-entry recomputes the
// token from a fresh count rather than reusing a stale one.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	apptDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, ok := u.catalog.Find(req.DoctorName)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsAvailableOn(apptDate) {
		return nil, ErrDayUnavailable
	}

	limit := u.capacity.LimitFor(doctor.Name, apptDate)

	var booking *entity.Booking
	var lastErr error
	for attempt := 1; attempt <= maxAllocateAttempts; attempt++ {
		booking, lastErr = u.allocate(ctx, doctor.Name, apptDate, limit, req, dateOfBirth)
		if lastErr == nil || !errors.Is(lastErr, repository.ErrTxConflict) {
			break
		}
		u.log.Warnf("Booking allocation conflict for %s on %s (attempt %d/%d): %+v",
			doctor.Name, req.Date, attempt, maxAllocateAttempts, lastErr)
	}

	if lastErr != nil {
		var capErr *CapacityExceededError
		if errors.As(lastErr, &capErr) {
			return nil, lastErr
		}
		u.log.Errorf("Failed to allocate booking for %s on %s: %+v", doctor.Name, req.Date, lastErr)
		return nil, ErrStoreUnavailable
	}

	// Side effects stay outside the key lock.
	metrics.BookingCreated(doctor.Name)
	if err := u.cache.Invalidate(ctx, doctor.Name, apptDate); err != nil {
		u.log.Warnf("Failed to invalidate token cache for %s on %s (non-fatal): %+v", doctor.Name, req.Date, err)
	}

	u.log.Infof("Booking created: id=%s, doctor=%s, date=%s, token=%d",
		booking.ID, doctor.Name, req.Date, booking.TokenNumber)

	return &dto.BookingResponse{
		Message:     "Booking Successful",
		TokenNumber: booking.TokenNumber,
		BookingID:   booking.ID,
	}, nil
}

// allocate performs one count-then-insert attempt inside a transaction
// serialized on (doctorName, date).
func (u *bookingUsecase) allocate(
	ctx context.Context,
	doctorName string,
	apptDate time.Time,
	limit int,
	req *dto.CreateBookingRequest,
	dateOfBirth time.Time,
) (*entity.Booking, error) {
	var booking *entity.Booking
	err := u.store.WithKeyLock(ctx, doctorName, apptDate, func(tx repository.BookingTx) error {
		count, err := tx.CountBookings(doctorName, apptDate)
		if err != nil {
			return err
		}
		if count >= int64(limit) {
			return &CapacityExceededError{Limit: limit}
		}

		booking = &entity.Booking{
			PatientName:     req.PatientName,
			Place:           req.Place,
			Age:             req.Age,
			Phone:           req.Phone,
			DateOfBirth:     dateOfBirth,
			DoctorName:      doctorName,
			AppointmentDate: apptDate,
			TokenNumber:     int(count) + 1,
		}
		return tx.InsertBooking(booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingDetailResponse, error) {
	booking, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingToDetailResponse(booking), nil
}

// GetReceipt renders the PDF receipt for a committed booking.
func (u *bookingUsecase) GetReceipt(ctx context.Context, id uuid.UUID) ([]byte, error) {
	booking, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := u.receipt.Render(booking)
	if err != nil {
		u.log.Errorf("Failed to render receipt for booking %s: %+v", id, err)
		return nil, err
	}
	return pdf, nil
}

func (u *bookingUsecase) findBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := u.store.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, ErrStoreUnavailable
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
