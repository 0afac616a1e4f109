package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const leadsSheet = "Leads"

var leadExportHeaders = []string{
	"Received (UTC)", // A
	"Patient name",   // B
	"Mobile number",  // C
	"Location",       // D
	"Page",           // E
	"Domain",         // F
	"Channel",        // G
	"Status",         // H
	"Error",          // I
	"IP address",     // J
}

// ExportLeadsXLSX writes the lead log for [from, to) into a spreadsheet
func ExportLeadsXLSX(dbConn *gorm.DB, from, to time.Time) (*bytes.Buffer, error) {
	leads, err := ListLeads(dbConn, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", leadsSheet)
	for i, header := range leadExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(leadsSheet, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(leadsSheet, "A1", "J1", headerStyle)
	f.SetColWidth(leadsSheet, "A", "J", 20)
	f.SetColWidth(leadsSheet, "D", "D", 45)

	for i, lead := range leads {
		row := []interface{}{
			lead.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			lead.PatientName,
			lead.MobileNumber,
			lead.Location,
			lead.PageName,
			lead.DomainName,
			lead.Channel,
			lead.Status,
			lead.Error,
			lead.IPAddress,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(leadsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write lead row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf, nil
}
