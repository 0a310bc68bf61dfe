package ocr

import (
	"context"
	"strings"
)

// Static returns the same text for every input. Used to exercise code above
// the engine without Tesseract installed.
type Static struct {
	Text       string
	Confidence float64
}

// Name implements Engine.
func (s *Static) Name() string { return "static" }

// Recognize implements Engine.
func (s *Static) Recognize(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	text := strings.TrimSpace(s.Text)
	var words []Word
	for _, field := range strings.Fields(text) {
		words = append(words, Word{Text: field, Confidence: s.Confidence})
	}

	return Result{
		InputID:    in.ID,
		Engine:     s.Name(),
		Text:       text,
		Lines:      SplitLines(text),
		Words:      words,
		Confidence: MeanConfidence(words),
	}, nil
}
