package importer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXImporter reads the first sheet of a workbook laid out like the csv format.
type XLSXImporter struct{}

func (XLSXImporter) Import(_ context.Context, data []byte) ([]Question, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return questionsFromRows(rows), nil
}
