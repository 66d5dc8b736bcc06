package service

import (
	"strings"

	"github.com/lshigami/lms/internal/model"
)

var optionLetters = [4]string{"A", "B", "C", "D"}

// NormalizeOption folds a submitted option into its canonical letter:
// surrounding space is trimmed, letters are upper-cased and "1".."4" become
// "A".."D". Anything else comes back trimmed and upper-cased so that it can
// never equal a stored key by accident.
func NormalizeOption(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
		return optionLetters[s[0]-'1']
	}
	return s
}

// CanonicalAnswer resolves the correct answer of a question given as a
// letter, an index or the text of one of the options. ok is false when the
// input matches none of them.
func CanonicalAnswer(raw string, options [4]string) (string, bool) {
	key := NormalizeOption(raw)
	for _, l := range optionLetters {
		if key == l {
			return l, true
		}
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), text) {
			return optionLetters[i], true
		}
	}
	return "", false
}

// AnswerKey maps question id to its canonical correct letter.
type AnswerKey map[uint]string

func NewAnswerKey(questions []model.McqQuestion) AnswerKey {
	key := make(AnswerKey, len(questions))
	for _, q := range questions {
		key[q.ID] = NormalizeOption(q.CorrectAnswer)
	}
	return key
}

// Tally counts the answers whose normalized option equals the key for the
// same question. Unknown question ids and blank answers count as wrong.
func (k AnswerKey) Tally(answers []model.TestAnswer) int {
	score := 0
	for _, a := range answers {
		want, ok := k[a.QuestionID]
		if !ok || want == "" {
			continue
		}
		if NormalizeOption(a.SelectedOption) == want {
			score++
		}
	}
	return score
}
