// Package ocr defines the contract between the scan pipeline and OCR engines.
// Engines take one encoded image and return its text with word confidences.
package ocr

import (
	"context"
	"strings"
)

// Input is a single image submitted for recognition.
type Input struct {
	// Metadata passes engine-specific variables, e.g. tessedit_pageseg_mode.
	Metadata map[string]string
	// ID is echoed back in Result.
	ID string
	// Image is the encoded image (PNG or JPEG).
	Image []byte
	// Languages are trained-data names such as "jpn" or "eng".
	Languages []string
	// DPI of the image; zero means unknown.
	DPI int
}

// Word is a single recognized token.
type Word struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"` // 0..1
}

// Line is one line of recognized text.
type Line struct {
	Text  string `json:"text"`
	Words []Word `json:"words,omitempty"`
}

// Result is the output of a single recognition.
type Result struct {
	InputID    string  `json:"input_id,omitempty"`
	Text       string  `json:"text"`
	Engine     string  `json:"engine"`
	Lines      []Line  `json:"lines,omitempty"`
	Words      []Word  `json:"words,omitempty"`
	Confidence float64 `json:"confidence"` // средняя уверенность по словам, 0..1
}

// Empty reports whether nothing but whitespace was recognized.
func (r Result) Empty() bool {
	return strings.TrimSpace(r.Text) == ""
}

//go:generate moq -out engine_mock.go . Engine

// Engine recognizes text in an image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// NewInput builds an Input for image with opts applied.
func NewInput(image []byte, opts ...InputOption) Input {
	in := Input{Image: image}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// MeanConfidence averages word confidences; zero when there are no words.
func MeanConfidence(words []Word) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += w.Confidence
	}
	return sum / float64(len(words))
}

// SplitLines splits text into trimmed non-empty lines.
func SplitLines(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, Line{Text: line})
	}
	return lines
}
