package out

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"courseforge/internal/modules/export/domain"
	exportout "courseforge/internal/modules/export/port/out"
)

const sheetName = "Sheet1"

// ExcelizeWorkbook renders the worksheet layout with excelize.
type ExcelizeWorkbook struct{}

func NewExcelizeWorkbook() exportout.Workbook {
	return &ExcelizeWorkbook{}
}

func (w *ExcelizeWorkbook) Write(ctx context.Context, path string, course domain.Course) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeHeaders(f); err != nil {
		return err
	}

	rows, merges := domain.BuildRows(course)
	for i, row := range rows {
		sheetRow := i + 2
		values := []string{
			row.Week, row.WeekGoal, row.ChapterNumber, row.ChapterGoals,
			row.ChapterTitle, "", row.LessonTitle, row.Minutes, row.Outcome,
		}
		for col, value := range values {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, sheetRow)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	for _, m := range merges {
		from := fmt.Sprintf("%s%d", m.Column, m.FromRow)
		to := fmt.Sprintf("%s%d", m.Column, m.ToRow)
		if err := f.MergeCell(sheetName, from, to); err != nil {
			return fmt.Errorf("merge %s:%s: %w", from, to, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func (w *ExcelizeWorkbook) Read(ctx context.Context, path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", path, err)
	}
	return rows, nil
}

func writeHeaders(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for col, header := range domain.SheetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	lastCol, err := excelize.CoordinatesToCellName(len(domain.SheetHeaders), 1)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("style headers: %w", err)
	}
	for col, width := range domain.SheetColumnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return fmt.Errorf("set width %s: %w", name, err)
		}
	}
	return nil
}
