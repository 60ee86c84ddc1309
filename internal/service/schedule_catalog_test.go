package service

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return date
}

func TestCatalogFind(t *testing.T) {
	t.Parallel()
	catalog := NewScheduleCatalog(DefaultDoctors())

	doctor, ok := catalog.Find("Dr. Riyas")
	if !ok {
		t.Fatal("Find(Dr. Riyas): not found")
	}
	if doctor.Specialty != "Ortho" {
		t.Errorf("Specialty: got %q, want %q", doctor.Specialty, "Ortho")
	}

	if _, ok := catalog.Find("Dr. Nobody"); ok {
		t.Error("Find(Dr. Nobody): found, want not found")
	}
}

func TestCatalogDoctorsStableOrder(t *testing.T) {
	t.Parallel()
	catalog := NewScheduleCatalog(DefaultDoctors())

	doctors := catalog.Doctors()
	if len(doctors) != 3 {
		t.Fatalf("Doctors: got %d, want 3", len(doctors))
	}
	want := []string{"Dr. Riyas", "Dr. Joseph", "Dr. Prakash"}
	for i, name := range want {
		if doctors[i].Name != name {
			t.Errorf("Doctors[%d]: got %q, want %q", i, doctors[i].Name, name)
		}
	}
}

func TestDoctorAvailability(t *testing.T) {
	t.Parallel()
	catalog := NewScheduleCatalog(DefaultDoctors())

	tests := []struct {
		doctor string
		date   string // 2025-03-03 is a Monday
		want   bool
	}{
		{"Dr. Riyas", "2025-03-03", true},    // Monday
		{"Dr. Riyas", "2025-03-07", true},    // Friday
		{"Dr. Riyas", "2025-03-08", false},   // Saturday
		{"Dr. Joseph", "2025-03-03", false},  // Monday, works Wed-Sat
		{"Dr. Joseph", "2025-03-05", true},   // Wednesday
		{"Dr. Joseph", "2025-03-08", true},   // Saturday
		{"Dr. Prakash", "2025-03-08", true},  // Saturday
		{"Dr. Prakash", "2025-03-02", false}, // Sunday, nobody works Sunday
	}

	for _, tt := range tests {
		doctor, ok := catalog.Find(tt.doctor)
		if !ok {
			t.Fatalf("Find(%s): not found", tt.doctor)
		}
		if got := doctor.IsAvailableOn(mustDate(t, tt.date)); got != tt.want {
			t.Errorf("%s on %s: got %v, want %v", tt.doctor, tt.date, got, tt.want)
		}
	}
}
