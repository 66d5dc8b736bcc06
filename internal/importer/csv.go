package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
)

// CSVImporter reads question_text, option_1..option_4, correct_answer rows.
type CSVImporter struct{}

func (CSVImporter) Import(_ context.Context, data []byte) ([]Question, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return questionsFromRows(rows), nil
}
