package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/xuri/excelize/v2"
)

// SheetName is the only sheet of the XLSX report.
const SheetName = "Laporan"

var Header = []string{
	"OpsID",
	"Nama Lengkap",
	"Nomor Rekening",
	"Nama Penerima",
	"Jenis Bank",
	"Periode",
	"Jenis Komplain",
	"Info Tambahan",
}

// typeLabel and extraInfo are the two variant-specific report columns.
func typeLabel(c complaint.Complaint) string {
	return complaint.Match(c,
		func(complaint.Complaint, complaint.MissingSalaryDetail) string { return "BELUM TURUN GAJI" },
		func(complaint.Complaint, complaint.UnderpaidSalaryDetail) string { return "KURANG GAJI" },
	)
}

func extraInfo(c complaint.Complaint) string {
	return complaint.Match(c,
		func(_ complaint.Complaint, d complaint.MissingSalaryDetail) string {
			return "Sudah Isi Link: " + d.AlreadyFilledLink
		},
		func(_ complaint.Complaint, d complaint.UnderpaidSalaryDetail) string {
			return "Nominal Diterima: " + d.ReceivedAmount
		},
	)
}

// row returns the report columns. The account number is left raw here.
func row(c complaint.Complaint) []string {
	return []string{
		c.OpsID,
		c.FullName,
		c.BankAccountNumber,
		c.BankAccountName,
		c.BankName,
		c.Period,
		typeLabel(c),
		extraInfo(c),
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	return strings.Join(quoted, ",")
}

// CSV renders the report with every field quoted. The account number gets a
// leading apostrophe so spreadsheets keep it as text. There is no trailing newline.
func CSV(complaints []complaint.Complaint) string {
	lines := make([]string, 0, len(complaints)+1)
	lines = append(lines, csvLine(Header))
	for _, c := range complaints {
		fields := row(c)
		fields[2] = "'" + fields[2]
		lines = append(lines, csvLine(fields))
	}
	return strings.Join(lines, "\n")
}

// Clipboard renders one labelled text block per complaint, separated by "---".
func Clipboard(complaints []complaint.Complaint) string {
	blocks := make([]string, 0, len(complaints))
	for _, c := range complaints {
		title := complaint.Match(c,
			func(c complaint.Complaint, _ complaint.MissingSalaryDetail) string {
				return "KOMPLEN GAJI PRIODE " + strings.ToUpper(c.Period)
			},
			func(c complaint.Complaint, _ complaint.UnderpaidSalaryDetail) string {
				return "KOMPLEN GAJI KURANG PRIODE " + strings.ToUpper(c.Period)
			},
		)

		blocks = append(blocks, title+"\n\n"+strings.Join([]string{
			"OpsID : " + c.OpsID,
			"Nama Lengkap : " + c.FullName,
			"Nomor Rekening : " + c.BankAccountNumber,
			"Nama Penerima : " + c.BankAccountName,
			"Jenis Bank : " + c.BankName,
			"Periode : " + c.Period,
		}, "\n"))
	}
	return strings.Join(blocks, "\n\n---\n\n")
}

// XLSX renders the report as a workbook. Every cell is written as a string so
// account numbers keep their leading zeros.
func XLSX(complaints []complaint.Complaint) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := make([][]string, 0, len(complaints)+1)
	rows = append(rows, Header)
	for _, c := range complaints {
		rows = append(rows, row(c))
	}

	for r, values := range rows {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStr(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "A", "H", 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename is the download name for a report generated at now.
func Filename(now time.Time, ext string) string {
	return fmt.Sprintf("Laporan_Komplain_SPX_%s.%s", now.Format("2006-01-02"), ext)
}
