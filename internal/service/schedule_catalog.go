package service

import (
	"royal-clinic-backend/internal/domain/entity"
)

// ScheduleCatalog answers which doctors exist and which days they work.
// It is immutable after construction, so lookups are safe from any goroutine.
type ScheduleCatalog struct {
	doctors []entity.Doctor
	byName  map[string]*entity.Doctor
}

func NewScheduleCatalog(doctors []entity.Doctor) *ScheduleCatalog {
	catalog := &ScheduleCatalog{
		doctors: doctors,
		byName:  make(map[string]*entity.Doctor, len(doctors)),
	}
	for i := range catalog.doctors {
		catalog.byName[catalog.doctors[i].Name] = &catalog.doctors[i]
	}
	return catalog
}

// DefaultDoctors returns the clinic's provider roster.
func DefaultDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			Name:      "Dr. Riyas",
			Specialty: "Ortho",
			Time:      "10:00 AM - 01:00 PM",
			Days:      []int{0, 1, 2, 3, 4}, // Mon-Fri
		},
		{
			Name:      "Dr. Joseph",
			Specialty: "Skin",
			Time:      "03:00 PM - 07:00 PM",
			Days:      []int{2, 3, 4, 5}, // Wed-Sat
		},
		{
			Name:      "Dr. Prakash",
			Specialty: "General",
			Time:      "01:00 PM - 08:00 PM",
			Days:      []int{0, 1, 2, 3, 4, 5}, // Mon-Sat
		},
	}
}

// Doctors returns the catalog in a stable order.
func (c *ScheduleCatalog) Doctors() []entity.Doctor {
	doctors := make([]entity.Doctor, len(c.doctors))
	copy(doctors, c.doctors)
	return doctors
}

// Find looks a doctor up by exact name.
func (c *ScheduleCatalog) Find(name string) (*entity.Doctor, bool) {
	doctor, ok := c.byName[name]
	return doctor, ok
}
