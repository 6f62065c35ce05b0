package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
)

// ExportService defines the interface for report file generation
type ExportService interface {
	ExportBookingsToExcel(agencyID uint, filters repository.BookingFilters) ([]byte, string, error)
}

// exportService implements ExportService
type exportService struct {
	bookingRepo repository.BookingRepository
}

// NewExportService creates a new instance of ExportService
func NewExportService(bookingRepo repository.BookingRepository) ExportService {
	return &exportService{bookingRepo: bookingRepo}
}

// ExportBookingsToExcel exports an agency's bookings to an Excel workbook
func (s *exportService) ExportBookingsToExcel(agencyID uint, filters repository.BookingFilters) ([]byte, string, error) {
	rows, err := s.bookingRepo.ListForExport(agencyID, filters)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get booking data: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Booking Number", "Booking Date", "Client", "Tour", "Adults", "Children", "Total Cost", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "I1", headerStyle)
	}

	for i, booking := range rows {
		row := i + 2

		tourName := ""
		if booking.TourName != nil {
			tourName = *booking.TourName
		}
		adults := 0
		if booking.Adults != nil {
			adults = *booking.Adults
		}
		children := 0
		if booking.Children != nil {
			children = *booking.Children
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), booking.BookingNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), booking.BookingDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), booking.ClientName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tourName)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), adults)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), children)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), booking.TotalCost.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), booking.Status)
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("bookings_export_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer.Bytes(), filename, nil
}
