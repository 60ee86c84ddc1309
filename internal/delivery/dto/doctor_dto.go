package dto

type DoctorResponse struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Time      string `json:"time"`
	Days      []int  `json:"days"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type AvailabilityResponse struct {
	DoctorName      string `json:"doctor_name"`
	Date            string `json:"date"`
	Available       bool   `json:"available"`
	RemainingTokens int    `json:"remaining_tokens"`
}
