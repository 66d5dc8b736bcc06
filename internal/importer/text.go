package importer

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	questionLine = regexp.MustCompile(`^(?i:q(?:uestion)?\s*)?(\d+)\s*[.):]\s*(.+)$`)
	optionLine   = regexp.MustCompile(`^\(?([A-Da-d])\s*[.):]\s*(.+)$`)
	answerLine   = regexp.MustCompile(`^(?i:(?:correct\s+)?(?:answer|ans|key))\s*[:\-=]\s*(.+)$`)
)

// ParseText extracts questions from free text laid out as
//
//	Q1. What is 2 + 2?
//	A) 3
//	B) 4
//	C) 5
//	D) 22
//	Answer: B
//
// The "Q" is optional. Question text may wrap over several lines; blocks
// missing an option or the answer are dropped.
func ParseText(text string) []Question {
	var (
		questions []Question
		cur       *Question
		seen      int
		lastOpt   = -1
	)
	flush := func() {
		if cur != nil && cur.complete() {
			questions = append(questions, *cur)
		}
		cur, seen, lastOpt = nil, 0, -1
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(strings.ReplaceAll(sc.Text(), "\u00a0", " "))
		if line == "" {
			continue
		}
		if m := answerLine.FindStringSubmatch(line); m != nil && cur != nil {
			cur.Answer = strings.TrimSpace(m[1])
			continue
		}
		if m := optionLine.FindStringSubmatch(line); m != nil && cur != nil && cur.Answer == "" {
			idx := int(strings.ToUpper(m[1])[0] - 'A')
			cur.Options[idx] = strings.TrimSpace(m[2])
			seen |= 1 << idx
			lastOpt = idx
			continue
		}
		if m := questionLine.FindStringSubmatch(line); m != nil {
			flush()
			cur = &Question{Text: strings.TrimSpace(m[2])}
			continue
		}
		if cur == nil || cur.Answer != "" {
			continue
		}
		// continuation of the question or of the last option
		if lastOpt >= 0 {
			cur.Options[lastOpt] += " " + line
		} else {
			cur.Text += " " + line
		}
	}
	flush()
	return questions
}
