package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/lms/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Extractor structures free text that the rule based parser could not read.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Question, error)
}

// maxPromptChars keeps very long documents within one request.
const maxPromptChars = 60000

type geminiExtractor struct {
	model *genai.GenerativeModel
}

// NewGeminiExtractor returns nil when GEMINI_API_KEY is not set; importers
// then run without a fallback.
func NewGeminiExtractor(cfg *config.Config) (Extractor, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Free text question import uses the rule based parser only.")
		return nil, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)
	return &geminiExtractor{model: model}, nil
}

type extractedQuestion struct {
	QuestionText  string `json:"question_text"`
	Option1       string `json:"option_1"`
	Option2       string `json:"option_2"`
	Option3       string `json:"option_3"`
	Option4       string `json:"option_4"`
	CorrectAnswer string `json:"correct_answer"`
}

func (g *geminiExtractor) Extract(ctx context.Context, text string) ([]Question, error) {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}
	resp, err := g.model.GenerateContent(ctx, genai.Text(extractionPrompt(text)))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	raw := responseText(resp)
	if raw == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}
	return decodeExtracted(raw)
}

func extractionPrompt(text string) string {
	var b strings.Builder
	b.WriteString("The document below contains multiple choice questions with four options each.\n")
	b.WriteString("Return a JSON array. Each element must have the keys question_text, option_1, option_2, option_3, option_4 and correct_answer.\n")
	b.WriteString("correct_answer is the letter A, B, C or D of the right option. Skip questions whose answer is not stated.\n")
	b.WriteString("Do not invent questions.\n\nDocument:\n")
	b.WriteString(text)
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// decodeExtracted accepts the bare JSON array, optionally wrapped in a
// markdown code fence.
func decodeExtracted(raw string) ([]Question, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var items []extractedQuestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return nil, fmt.Errorf("failed to decode extracted questions: %w", err)
	}
	questions := make([]Question, 0, len(items))
	for _, it := range items {
		q := Question{
			Text:    strings.TrimSpace(it.QuestionText),
			Options: [4]string{it.Option1, it.Option2, it.Option3, it.Option4},
			Answer:  strings.TrimSpace(it.CorrectAnswer),
		}
		if q.complete() {
			questions = append(questions, q)
		}
	}
	return questions, nil
}
