package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/iudanet/cardkeeper/internal/ocr"
)

// DefaultLanguages are used when the input carries none
var DefaultLanguages = []string{"jpn", "eng"}

// Engine implements ocr.Engine with the gosseract client.
// A new client is created per call; gosseract clients are not safe for concurrent use.
type Engine struct {
	clientFactory func() *gosseract.Client
	languages     []string
}

// New constructs a Tesseract-backed engine. langs are the defaults for inputs without languages.
func New(langs ...string) *Engine {
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	return &Engine{
		clientFactory: gosseract.NewClient,
		languages:     append([]string(nil), langs...),
	}
}

// Name implements ocr.Engine.
func (e *Engine) Name() string { return "tesseract" }

// Languages returns the default languages of the engine
func (e *Engine) Languages() []string {
	return append([]string(nil), e.languages...)
}

// Recognize performs OCR on a single image input.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}

	langs := in.Languages
	if len(langs) == 0 {
		langs = e.languages
	}
	if err := c.SetLanguage(langs...); err != nil {
		return ocr.Result{}, fmt.Errorf("set languages: %w", err)
	}

	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return ocr.Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	for k, v := range in.Metadata {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return ocr.Result{}, fmt.Errorf("set variable %s: %w", k, err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}

	// Распознавание может идти долго: отмена проверяется после него
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}

	plain := strings.TrimSpace(text)
	words := extractWords(c)

	return ocr.Result{
		InputID:    in.ID,
		Engine:     e.Name(),
		Text:       plain,
		Lines:      ocr.SplitLines(plain),
		Words:      words,
		Confidence: ocr.MeanConfidence(words),
	}, nil
}

func extractWords(c *gosseract.Client) []ocr.Word {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return nil
	}

	words := make([]ocr.Word, 0, len(boxes))
	for _, b := range boxes {
		if strings.TrimSpace(b.Word) == "" {
			continue
		}
		words = append(words, ocr.Word{
			Text:       b.Word,
			Confidence: b.Confidence / 100.0,
		})
	}

	return words
}
