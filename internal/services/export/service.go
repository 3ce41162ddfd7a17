// Package export turns monthly report data into a downloadable spreadsheet.
// Pure data-to-file transform, no business logic.
package export

import (
	"bytes"
	"fmt"
	"time"

	"mabportal/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetPartners = "By Partner"
	sheetServices = "By Service"
)

// MonthlyWorkbook renders the monthly report as an xlsx workbook with
// Summary, By Partner and By Service sheets.
func MonthlyWorkbook(report *models.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	monthName := time.Date(report.Year, time.Month(report.Month), 1, 0, 0, 0, 0, time.UTC).
		Format("January 2006")

	// Summary sheet replaces the default one.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"MAB Partner Portal - Monthly Report"},
		{monthName},
		{},
		{"Metric", "Value"},
		{"Total Revenue", fmt.Sprintf("$%.2f", report.Summary.TotalRevenue)},
		{"Total Commission", fmt.Sprintf("$%.2f", report.Summary.TotalCommission)},
		{"Transactions", report.Summary.TotalTransactions},
		{"Active Partners", report.Summary.ActivePartners},
	}
	if err := writeRows(f, sheetSummary, summaryRows); err != nil {
		return nil, err
	}

	partnerRows := [][]interface{}{{"Partner", "Earnings ($)", "Transactions"}}
	for _, p := range report.Partners {
		partnerRows = append(partnerRows, []interface{}{p.PartnerName, fmt.Sprintf("%.2f", p.Earnings), p.Count})
	}
	if _, err := f.NewSheet(sheetPartners); err != nil {
		return nil, err
	}
	if err := writeRows(f, sheetPartners, partnerRows); err != nil {
		return nil, err
	}

	serviceRows := [][]interface{}{{"Service", "Revenue ($)", "Transactions"}}
	for _, s := range report.Services {
		serviceRows = append(serviceRows, []interface{}{s.ServiceName, fmt.Sprintf("%.2f", s.Revenue), s.Count})
	}
	if _, err := f.NewSheet(sheetServices); err != nil {
		return nil, err
	}
	if err := writeRows(f, sheetServices, serviceRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for a monthly export.
func Filename(year, month int) string {
	return fmt.Sprintf("report-%d-%02d.xlsx", year, month)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
