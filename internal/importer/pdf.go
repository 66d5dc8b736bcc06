package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// PDFImporter pulls the plain text out of a pdf and parses it with ParseText,
// handing the text to Extractor when no question is recognised.
type PDFImporter struct {
	Extractor Extractor
}

func (p *PDFImporter) Import(ctx context.Context, data []byte) ([]Question, error) {
	text, err := pdfText(data)
	if err != nil {
		return nil, err
	}
	return parseWithFallback(ctx, "pdf", text, p.Extractor)
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}

func parseWithFallback(ctx context.Context, format, text string, extractor Extractor) ([]Question, error) {
	questions := ParseText(text)
	if len(questions) > 0 || extractor == nil {
		return questions, nil
	}
	log.Info().Str("format", format).Int("chars", len(text)).Msg("No questions recognised, asking extractor")
	extracted, err := extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract questions from %s: %w", format, err)
	}
	return extracted, nil
}
