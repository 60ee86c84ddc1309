package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"royal-clinic-backend/internal/delivery/dto"
	"royal-clinic-backend/internal/usecase"
	"royal-clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubBookingUsecase returns canned results for handler tests.
type stubBookingUsecase struct {
	createResp *dto.BookingResponse
	createErr  error
	getResp    *dto.BookingDetailResponse
	getErr     error
	receipt    []byte
	receiptErr error
}

func (s *stubBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubBookingUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingDetailResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubBookingUsecase) GetReceipt(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return s.receipt, s.receiptErr
}

func newBookingRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"doctor_name":  "Dr. Riyas",
		"date":         "2025-03-03",
		"patient_name": "Anitha K",
		"place":        "Kuttippuram",
		"age":          34,
		"phone":        "9876543210",
		"dob":          "1991-06-12",
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return bytes.NewBuffer(body)
}

func postBooking(t *testing.T, u usecase.BookingUsecase, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	h := NewBookingHandler(u, validator.NewValidator())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", body)
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)
	return rec
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	t.Parallel()
	bookingID := uuid.New()
	stub := &stubBookingUsecase{
		createResp: &dto.BookingResponse{Message: "Booking Successful", TokenNumber: 1, BookingID: bookingID},
	}

	rec := postBooking(t, stub, newBookingRequestBody(t))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if !strings.Contains(rec.Body.String(), bookingID.String()) {
		t.Errorf("body %q missing booking id", rec.Body.String())
	}
}

func TestCreateBookingHandlerInvalidBody(t *testing.T) {
	t.Parallel()
	rec := postBooking(t, &stubBookingUsecase{}, bytes.NewBufferString("{not json"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateBookingHandlerValidation(t *testing.T) {
	t.Parallel()
	body, _ := json.Marshal(map[string]interface{}{"doctor_name": "Dr. Riyas"})
	rec := postBooking(t, &stubBookingUsecase{}, bytes.NewBuffer(body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "Validation failed") {
		t.Errorf("body %q missing validation message", rec.Body.String())
	}
}

func TestCreateBookingHandlerErrorMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid date", usecase.ErrInvalidDate, http.StatusBadRequest, "Invalid date format"},
		{"doctor not found", usecase.ErrDoctorNotFound, http.StatusNotFound, "Doctor not found"},
		{"day unavailable", usecase.ErrDayUnavailable, http.StatusBadRequest, "Dr. Riyas is not available on this day"},
		{"capacity exceeded", &usecase.CapacityExceededError{Limit: 50}, http.StatusConflict, "Daily token limit (50) reached"},
		{"store unavailable", usecase.ErrStoreUnavailable, http.StatusServiceUnavailable, "temporarily unavailable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := postBooking(t, &stubBookingUsecase{createErr: tt.err}, newBookingRequestBody(t))
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q missing %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetBookingHandlerInvalidID(t *testing.T) {
	t.Parallel()
	h := NewBookingHandler(&stubBookingUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.GetBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	t.Parallel()
	h := NewBookingHandler(&stubBookingUsecase{getErr: usecase.ErrBookingNotFound}, validator.NewValidator())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.GetBooking(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDownloadReceiptHandler(t *testing.T) {
	t.Parallel()
	h := NewBookingHandler(&stubBookingUsecase{receipt: []byte("%PDF-1.3 fake")}, validator.NewValidator())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id+"/receipt", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.DownloadReceipt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type: got %q, want %q", got, "application/pdf")
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, id) {
		t.Errorf("Content-Disposition %q missing booking id", got)
	}
}
