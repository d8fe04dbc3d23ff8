package report

import (
	"fmt"

	"jobalert-engine/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName    = "Job Alerts"
	maxColWidth  = 50
	emptyMessage = "No Data Engineer (<=2 YOE) jobs found today."
)

// column order is fixed; columns with no value in any record are dropped so a
// source that never reports salary doesn't produce an all-sentinel column.
var columns = []struct {
	header string
	value  func(domain.JobRecord) string
}{
	{"Job Title", func(j domain.JobRecord) string { return j.Title }},
	{"Company", func(j domain.JobRecord) string { return j.Company }},
	{"Location", func(j domain.JobRecord) string { return j.Location }},
	{"Salary", func(j domain.JobRecord) string { return j.Salary }},
	{"Experience", func(j domain.JobRecord) string { return j.Experience }},
	{"Source", func(j domain.JobRecord) string { return j.Source }},
	{"Posted Date", func(j domain.JobRecord) string { return j.PostedDate }},
	{"Job URL", func(j domain.JobRecord) string { return j.URL }},
}

// Write renders records into an xlsx workbook at path. An empty record set
// still produces a one-row file with a readable message so the notifier
// always has a valid attachment. Returns the path it wrote.
func Write(path string, records []domain.JobRecord) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("report rename sheet: %w", err)
	}

	if len(records) == 0 {
		if err := writeCell(f, 1, 1, "Message"); err != nil {
			return "", err
		}
		if err := writeCell(f, 1, 2, emptyMessage); err != nil {
			return "", err
		}
		if err := setWidth(f, 1, len(emptyMessage)); err != nil {
			return "", err
		}
		if err := f.SaveAs(path); err != nil {
			return "", fmt.Errorf("report save: %w", err)
		}
		return path, nil
	}

	col := 0
	for _, c := range columns {
		present := false
		for _, r := range records {
			if c.value(r) != "" {
				present = true
				break
			}
		}
		if !present {
			continue
		}
		col++

		if err := writeCell(f, col, 1, c.header); err != nil {
			return "", err
		}
		width := len(c.header)
		for row, r := range records {
			v := c.value(r)
			if err := writeCell(f, col, row+2, v); err != nil {
				return "", err
			}
			if len(v) > width {
				width = len(v)
			}
		}
		if err := setWidth(f, col, width); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("report save: %w", err)
	}
	return path, nil
}

func writeCell(f *excelize.File, col, row int, v string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("report cell name: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("report set cell %s: %w", cell, err)
	}
	return nil
}

func setWidth(f *excelize.File, col, longest int) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Errorf("report column name: %w", err)
	}
	w := float64(longest + 2)
	if w > maxColWidth {
		w = maxColWidth
	}
	if err := f.SetColWidth(sheetName, name, name, w); err != nil {
		return fmt.Errorf("report set width: %w", err)
	}
	return nil
}
