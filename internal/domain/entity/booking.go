package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents an issued appointment token for a doctor on a given day.
//
// TokenNumber is unique within (DoctorName, AppointmentDate) and assigned in
// strictly increasing commit order starting at 1. The composite unique index
// backs that invariant at the storage level.
type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientName     string    `gorm:"type:varchar(100);not null" json:"patient_name"`
	Place           string    `gorm:"type:varchar(100)" json:"place"`
	Age             int       `json:"age"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone"`
	DateOfBirth     time.Time `gorm:"type:date" json:"dob"`
	DoctorName      string    `gorm:"type:varchar(100);not null;index:idx_bookings_doctor_date,priority:1;uniqueIndex:uq_bookings_doctor_date_token,priority:1" json:"doctor_name"`
	AppointmentDate time.Time `gorm:"type:date;not null;index:idx_bookings_doctor_date,priority:2;uniqueIndex:uq_bookings_doctor_date_token,priority:2" json:"appointment_date"`
	TokenNumber     int       `gorm:"not null;uniqueIndex:uq_bookings_doctor_date_token,priority:3" json:"token_number"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
