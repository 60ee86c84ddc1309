package converter

import (
	"royal-clinic-backend/internal/delivery/dto"
	"royal-clinic-backend/internal/domain/entity"
)

// BookingToDetailResponse converts a Booking entity to BookingDetailResponse DTO
func BookingToDetailResponse(booking *entity.Booking) *dto.BookingDetailResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingDetailResponse{
		ID:              booking.ID,
		PatientName:     booking.PatientName,
		Place:           booking.Place,
		Age:             booking.Age,
		Phone:           booking.Phone,
		DateOfBirth:     booking.DateOfBirth.Format("2006-01-02"),
		DoctorName:      booking.DoctorName,
		AppointmentDate: booking.AppointmentDate.Format("2006-01-02"),
		TokenNumber:     booking.TokenNumber,
		CreatedAt:       booking.CreatedAt,
	}
}
