package importer

import (
	"strings"
)

// columns holds the index of each field in a tabular file.
type columns struct {
	text    int
	options [4]int
	answer  int
}

var positional = columns{text: 0, options: [4]int{1, 2, 3, 4}, answer: 5}

var headerAliases = map[string]string{
	"question":       "text",
	"question_text":  "text",
	"questiontext":   "text",
	"option_1":       "1",
	"option1":        "1",
	"option_a":       "1",
	"option_2":       "2",
	"option2":        "2",
	"option_b":       "2",
	"option_3":       "3",
	"option3":        "3",
	"option_c":       "3",
	"option_4":       "4",
	"option4":        "4",
	"option_d":       "4",
	"answer":         "answer",
	"correct_answer": "answer",
	"correctanswer":  "answer",
	"correct":        "answer",
}

// detectHeader reports whether row is a header and, if so, where each
// column lives. Missing columns fall back to their positional index.
func detectHeader(row []string) (columns, bool) {
	cols := positional
	found := 0
	for i, cell := range row {
		key := strings.ToLower(strings.TrimSpace(cell))
		key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
		switch headerAliases[key] {
		case "text":
			cols.text = i
		case "1":
			cols.options[0] = i
		case "2":
			cols.options[1] = i
		case "3":
			cols.options[2] = i
		case "4":
			cols.options[3] = i
		case "answer":
			cols.answer = i
		default:
			continue
		}
		found++
	}
	return cols, found >= 2
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// questionsFromRows maps spreadsheet-like rows onto questions. A header row
// is optional; incomplete rows are skipped.
func questionsFromRows(rows [][]string) []Question {
	if len(rows) == 0 {
		return nil
	}
	cols, header := detectHeader(rows[0])
	if header {
		rows = rows[1:]
	}

	var questions []Question
	for _, row := range rows {
		q := Question{Text: cell(row, cols.text), Answer: cell(row, cols.answer)}
		for i, idx := range cols.options {
			q.Options[i] = cell(row, idx)
		}
		if q.complete() {
			questions = append(questions, q)
		}
	}
	return questions
}
