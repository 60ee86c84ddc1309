package usecase

import (
	"context"
	"time"

	"royal-clinic-backend/internal/converter"
	"royal-clinic-backend/internal/delivery/dto"
	"royal-clinic-backend/internal/domain/repository"
	"royal-clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	GetDoctors(ctx context.Context) *dto.DoctorListResponse
	GetAvailability(ctx context.Context, doctorName, date string) (*dto.AvailabilityResponse, error)
}

type doctorUsecase struct {
	log      *logrus.Logger
	store    repository.BookingStore
	catalog  *service.ScheduleCatalog
	capacity service.CapacityPolicy
	cache    service.TokenCache
}

func NewDoctorUsecase(
	log *logrus.Logger,
	store repository.BookingStore,
	catalog *service.ScheduleCatalog,
	capacity service.CapacityPolicy,
	cache service.TokenCache,
) DoctorUsecase {
	return &doctorUsecase{
		log:      log,
		store:    store,
		catalog:  catalog,
		capacity: capacity,
		cache:    cache,
	}
}

func (u *doctorUsecase) GetDoctors(ctx context.Context) *dto.DoctorListResponse {
	doctors := u.catalog.Doctors()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}

// GetAvailability reports whether a doctor works on the requested day and how
// many tokens remain. The issued count comes from the cache when warm, from
// the store otherwise; it is advisory only, the booking transaction recounts.
func (u *doctorUsecase) GetAvailability(ctx context.Context, doctorName, date string) (*dto.AvailabilityResponse, error) {
	apptDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, ok := u.catalog.Find(doctorName)
	if !ok {
		return nil, ErrDoctorNotFound
	}

	response := &dto.AvailabilityResponse{
		DoctorName: doctor.Name,
		Date:       apptDate.Format(dateLayout),
	}

	if !doctor.IsAvailableOn(apptDate) {
		return response, nil
	}
	response.Available = true

	issued, ok := u.cache.GetIssued(ctx, doctor.Name, apptDate)
	if !ok {
		issued, err = u.store.CountBookings(ctx, doctor.Name, apptDate)
		if err != nil {
			u.log.Warnf("Failed to count bookings for %s on %s: %+v", doctor.Name, date, err)
			return nil, ErrStoreUnavailable
		}
		if err := u.cache.SetIssued(ctx, doctor.Name, apptDate, issued); err != nil {
			u.log.Warnf("Failed to warm token cache for %s on %s (non-fatal): %+v", doctor.Name, date, err)
		}
	}

	remaining := u.capacity.LimitFor(doctor.Name, apptDate) - int(issued)
	if remaining < 0 {
		remaining = 0
	}
	response.RemainingTokens = remaining

	return response, nil
}
