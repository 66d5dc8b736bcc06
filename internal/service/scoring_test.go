package service

import (
	"testing"

	"github.com/lshigami/lms/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeOption(t *testing.T) {
	cases := map[string]string{
		"A":     "A",
		" b ":   "B",
		"3":     "C",
		" 4\n":  "D",
		"5":     "5",
		"":      "",
		"Paris": "PARIS",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeOption(in), "input %q", in)
	}
}

func TestCanonicalAnswer(t *testing.T) {
	opts := [4]string{"Berlin", "Paris", "Rome", "Madrid"}

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"letter", "B", "B", true},
		{"lower letter", "c", "C", true},
		{"index", "4", "D", true},
		{"option text", " paris ", "B", true},
		{"unknown text", "Lisbon", "", false},
		{"out of range index", "7", "", false},
		{"blank", "  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalAnswer(tt.in, opts)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerKeyTally(t *testing.T) {
	key := NewAnswerKey([]model.McqQuestion{
		{ID: 1, CorrectAnswer: "A"},
		{ID: 2, CorrectAnswer: "C"},
		{ID: 3, CorrectAnswer: "D"},
	})

	tests := []struct {
		name    string
		answers []model.TestAnswer
		want    int
	}{
		{"all correct", []model.TestAnswer{{QuestionID: 1, SelectedOption: "A"}, {QuestionID: 2, SelectedOption: "C"}, {QuestionID: 3, SelectedOption: "D"}}, 3},
		{"trim and case fold", []model.TestAnswer{{QuestionID: 1, SelectedOption: " a "}, {QuestionID: 2, SelectedOption: "3"}}, 2},
		{"unknown question counts as wrong", []model.TestAnswer{{QuestionID: 99, SelectedOption: "A"}, {QuestionID: 1, SelectedOption: "A"}}, 1},
		{"blank answer", []model.TestAnswer{{QuestionID: 1, SelectedOption: ""}}, 0},
		{"none", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, key.Tally(tt.answers))
		})
	}
}

// The tally never exceeds the number of submitted answers nor the number of
// known questions.
func TestAnswerKeyTallyBounds(t *testing.T) {
	key := NewAnswerKey([]model.McqQuestion{{ID: 1, CorrectAnswer: "B"}, {ID: 2, CorrectAnswer: "B"}})
	options := []string{"A", "B", "C", "D", "b", "2", ""}
	for _, o1 := range options {
		for _, o2 := range options {
			answers := []model.TestAnswer{
				{QuestionID: 1, SelectedOption: o1},
				{QuestionID: 2, SelectedOption: o2},
				{QuestionID: 1, SelectedOption: o1},
			}
			got := key.Tally(answers)
			want := 0
			for _, a := range answers {
				if NormalizeOption(a.SelectedOption) == "B" {
					want++
				}
			}
			assert.Equal(t, want, got)
			assert.LessOrEqual(t, got, len(answers))
		}
	}
}
