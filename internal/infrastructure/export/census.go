package export

import (
	"bytes"
	"fmt"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/domain/fieldschema"

	"github.com/xuri/excelize/v2"
)

const (
	SheetMembers   = "Members"
	SheetCoverages = "Coverages"
)

var (
	memberHeaders   = []string{"Class", "First Name", "Middle Name", "Last Name", "Email", "Phone", "Birthdate", "Source Applicant ID"}
	coverageHeaders = []string{"Class", "Product Type", "Details", "Premium"}
)

// GroupCensus builds the census workbook of a group policy: one row per
// member on the first sheet and the class coverages on the second.
func GroupCensus(p entities.GroupPolicy) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetMembers); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetCoverages); err != nil {
		return nil, fmt.Errorf("failed to create coverages sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	writeHeader(f, SheetMembers, memberHeaders, headerStyle)
	writeHeader(f, SheetCoverages, coverageHeaders, headerStyle)

	memberRow, coverageRow := 2, 2
	for _, class := range p.Classes {
		for _, m := range class.Members {
			birthdate := ""
			if m.Birthdate != nil {
				birthdate = m.Birthdate.Format("2006-01-02")
			}
			writeRow(f, SheetMembers, memberRow, class.ClassName, m.FirstName, m.MiddleName, m.LastName, m.Email, m.Phone, birthdate, m.SourceApplicantID)
			memberRow++
		}
		for _, c := range class.Coverages {
			premium := ""
			if c.Premium != nil {
				premium = fieldschema.FormatMoney(*c.Premium)
			}
			writeRow(f, SheetCoverages, coverageRow, class.ClassName, c.ProductType, c.Details, premium)
			coverageRow++
		}
	}

	f.SetColWidth(SheetMembers, "A", "H", 18)
	f.SetColWidth(SheetCoverages, "A", "B", 18)
	f.SetColWidth(SheetCoverages, "C", "C", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}

// CensusFileName is the download name of a group policy census.
func CensusFileName(p entities.GroupPolicy) string {
	return fmt.Sprintf("census-%s.xlsx", p.PolicyNumber)
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
