package service

import (
	"bytes"
	"fmt"

	"royal-clinic-backend/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

const (
	receiptClinicName = "ROYAL CLINIC - KUTTIPPURAM"
	receiptTitle      = "Appointment Receipt"
)

// ReceiptService renders a printable PDF receipt for a committed booking.
// It only reads the booking record; it never holds a store transaction.
type ReceiptService struct{}

func NewReceiptService() *ReceiptService {
	return &ReceiptService{}
}

func (s *ReceiptService) Render(booking *entity.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, receiptClinicName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, receiptTitle, "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Token Number: %d", booking.TokenNumber), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(95, 8, fmt.Sprintf("Doctor: %s", booking.DoctorName), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s", booking.AppointmentDate.Format("2006-01-02")), "", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Patient Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Name: %s", booking.PatientName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Age: %d", booking.Age), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Place: %s", booking.Place), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Phone: %s", booking.Phone), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("DOB: %s", booking.DateOfBirth.Format("2006-01-02")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
