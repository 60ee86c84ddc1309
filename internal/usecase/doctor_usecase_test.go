package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"royal-clinic-backend/internal/domain/repository"
	"royal-clinic-backend/internal/service"
)

func newTestDoctorUsecase(store repository.BookingStore, limit int) (DoctorUsecase, *fakeCache) {
	cache := newFakeCache()
	catalog := service.NewScheduleCatalog(service.DefaultDoctors())
	capacity := service.NewFixedCapacityPolicy(limit)
	return NewDoctorUsecase(testLogger(), store, catalog, capacity, cache), cache
}

func TestGetDoctors(t *testing.T) {
	t.Parallel()
	u, _ := newTestDoctorUsecase(newMemStore(), 50)

	doctors := u.GetDoctors(context.Background())
	if doctors.Total != 3 {
		t.Fatalf("Total: got %d, want 3", doctors.Total)
	}
	if doctors.Doctors[0].Name != "Dr. Riyas" {
		t.Errorf("Doctors[0].Name: got %q, want %q", doctors.Doctors[0].Name, "Dr. Riyas")
	}
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	t.Parallel()
	u, _ := newTestDoctorUsecase(newMemStore(), 50)

	if _, err := u.GetAvailability(context.Background(), "Dr. Riyas", "not-a-date"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("GetAvailability: got %v, want ErrInvalidDate", err)
	}
}

func TestGetAvailabilityUnknownDoctor(t *testing.T) {
	t.Parallel()
	u, _ := newTestDoctorUsecase(newMemStore(), 50)

	if _, err := u.GetAvailability(context.Background(), "Dr. Nobody", "2025-03-03"); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("GetAvailability: got %v, want ErrDoctorNotFound", err)
	}
}

func TestGetAvailabilityOffDay(t *testing.T) {
	t.Parallel()
	u, _ := newTestDoctorUsecase(newMemStore(), 50)

	// Saturday, Dr. Riyas works Mon-Fri.
	availability, err := u.GetAvailability(context.Background(), "Dr. Riyas", "2025-03-08")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if availability.Available {
		t.Error("Available: got true, want false")
	}
	if availability.RemainingTokens != 0 {
		t.Errorf("RemainingTokens: got %d, want 0", availability.RemainingTokens)
	}
}

func TestGetAvailabilityCountsFromStore(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	bookingUsecase, _ := newTestBookingUsecase(store, 5)
	for i := 0; i < 2; i++ {
		if _, err := bookingUsecase.CreateBooking(context.Background(), validRequest("Dr. Prakash", "2025-03-04")); err != nil {
			t.Fatalf("CreateBooking %d: %v", i+1, err)
		}
	}

	u, cache := newTestDoctorUsecase(store, 5)
	availability, err := u.GetAvailability(context.Background(), "Dr. Prakash", "2025-03-04")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if !availability.Available {
		t.Error("Available: got false, want true")
	}
	if availability.RemainingTokens != 3 {
		t.Errorf("RemainingTokens: got %d, want 3", availability.RemainingTokens)
	}

	// The read should have warmed the cache.
	date, _ := time.Parse("2006-01-02", "2025-03-04")
	if issued, ok := cache.GetIssued(context.Background(), "Dr. Prakash", date); !ok || issued != 2 {
		t.Errorf("cached issued count: got (%d, %v), want (2, true)", issued, ok)
	}
}

func TestGetAvailabilityUsesCache(t *testing.T) {
	t.Parallel()
	u, cache := newTestDoctorUsecase(newMemStore(), 5)

	date, _ := time.Parse("2006-01-02", "2025-03-04")
	cache.SetIssued(context.Background(), "Dr. Prakash", date, 4)

	// The store is empty; a remaining count of 1 proves the cache was read.
	availability, err := u.GetAvailability(context.Background(), "Dr. Prakash", "2025-03-04")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if availability.RemainingTokens != 1 {
		t.Errorf("RemainingTokens: got %d, want 1", availability.RemainingTokens)
	}
}

func TestGetAvailabilityNeverNegative(t *testing.T) {
	t.Parallel()
	u, cache := newTestDoctorUsecase(newMemStore(), 5)

	date, _ := time.Parse("2006-01-02", "2025-03-04")
	cache.SetIssued(context.Background(), "Dr. Prakash", date, 10)

	availability, err := u.GetAvailability(context.Background(), "Dr. Prakash", "2025-03-04")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if availability.RemainingTokens != 0 {
		t.Errorf("RemainingTokens: got %d, want 0", availability.RemainingTokens)
	}
}
