package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	DoctorName  string `json:"doctor_name" validate:"required,max=100"`
	Date        string `json:"date" validate:"required"`
	PatientName string `json:"patient_name" validate:"required,max=100"`
	Place       string `json:"place" validate:"max=100"`
	Age         int    `json:"age" validate:"gte=0,lte=150"`
	Phone       string `json:"phone" validate:"max=20"`
	DateOfBirth string `json:"dob" validate:"required,datetime=2006-01-02"`
}

// Response DTOs

type BookingResponse struct {
	Message     string    `json:"message"`
	TokenNumber int       `json:"token_number"`
	BookingID   uuid.UUID `json:"booking_id"`
}

type BookingDetailResponse struct {
	ID              uuid.UUID `json:"id"`
	PatientName     string    `json:"patient_name"`
	Place           string    `json:"place"`
	Age             int       `json:"age"`
	Phone           string    `json:"phone"`
	DateOfBirth     string    `json:"dob"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentDate string    `json:"appointment_date"`
	TokenNumber     int       `json:"token_number"`
	CreatedAt       time.Time `json:"created_at"`
}
