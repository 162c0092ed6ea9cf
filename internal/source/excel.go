package source

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// LoadWorkbook opens an Excel export and returns the preferred sheet as a
// raw table. When the preferred sheet is missing (or empty, meaning no
// preference) the first sheet of the workbook is used instead.
func LoadWorkbook(content []byte, preferredSheet string) (*RawTable, error) {
	excelFile, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook contains no sheets")
	}

	sheetName := sheets[0]
	if preferredSheet != "" {
		if slices.Contains(sheets, preferredSheet) {
			sheetName = preferredSheet
		} else {
			zap.S().Named("source").Infof("sheet %q not found, falling back to %q", preferredSheet, sheetName)
		}
	}

	rows, err := excelFile.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return &RawTable{Header: []string{}, Rows: [][]string{}}, nil
	}

	return &RawTable{Header: rows[0], Rows: rows[1:]}, nil
}

// IsExcelFile reports whether the content looks like an xlsx workbook.
func IsExcelFile(content []byte) bool {
	if len(content) < 2 {
		return false
	}
	if content[0] == 0x50 && content[1] == 0x4B {
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return false
		}
		defer f.Close()
		return true
	}
	return false
}
