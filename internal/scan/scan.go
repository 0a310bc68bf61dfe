// Package scan turns a photo of a business card into card fields.
//
// The photo is analyzed, preprocessed with several presets and recognized
// with several page segmentation modes. Every candidate is scored by the OCR
// confidence and by how well its text parses into card fields; the best one
// wins.
package scan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/iudanet/cardkeeper/internal/cardparse"
	"github.com/iudanet/cardkeeper/internal/imaging"
	"github.com/iudanet/cardkeeper/internal/ocr"
)

const (
	// DefaultMaxCandidates bounds the number of OCR runs per scan
	DefaultMaxCandidates = 6
	// DefaultDPI is reported to the engine for upscaled photos
	DefaultDPI = 300
	// MaxSourcePixels rejects decompression bombs before decoding
	MaxSourcePixels = 40_000_000

	// Веса слияния оценок
	ocrWeight   = 0.6
	fieldWeight = 0.4
)

// DefaultPSMs are the page segmentation modes tried for every preset
var DefaultPSMs = []int{ocr.PSMSingleBlock, ocr.PSMAuto, ocr.PSMSparseText}

var (
	ErrUnreadableImage = errors.New("unreadable image")
	ErrImageTooLarge   = errors.New("image dimensions too large")
)

// Candidate is one preset and PSM combination that was recognized
type Candidate struct {
	Preset        string  `json:"preset"`
	Error         string  `json:"error,omitempty"`
	PSM           int     `json:"psm"`
	OCRConfidence float64 `json:"ocr_confidence"`
	FieldScore    float64 `json:"field_score"`
	Score         float64 `json:"score"`
	TextLength    int     `json:"text_length"`
}

// Report is the outcome of a scan
type Report struct {
	Levels     map[cardparse.Field]cardparse.ConfidenceLevel `json:"levels"`
	Engine     string                                        `json:"engine"`
	Preset     string                                        `json:"preset,omitempty"`
	Text       string                                        `json:"text"`
	Candidates []Candidate                                   `json:"candidates"`
	Fields     cardparse.Fields                              `json:"fields"`
	Quality    imaging.Quality                               `json:"quality"`
	PSM        int                                           `json:"psm,omitempty"`
	Score      float64                                       `json:"score"`
	DurationMS int64                                         `json:"duration_ms"`
	Recognized bool                                          `json:"recognized"`
}

// Pipeline runs scans with one OCR engine
type Pipeline struct {
	engine        ocr.Engine
	logger        *slog.Logger
	now           func() time.Time
	whitelist     string
	languages     []string
	psms          []int
	maxCandidates int
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLanguages sets the OCR languages; empty keeps the engine default
func WithLanguages(langs ...string) Option {
	return func(p *Pipeline) {
		p.languages = append([]string(nil), langs...)
	}
}

// WithPSMs sets the page segmentation modes tried per preset
func WithPSMs(psms ...int) Option {
	return func(p *Pipeline) {
		if len(psms) > 0 {
			p.psms = append([]int(nil), psms...)
		}
	}
}

// WithWhitelist restricts recognition to chars; empty allows everything
func WithWhitelist(chars string) Option {
	return func(p *Pipeline) {
		p.whitelist = chars
	}
}

// WithMaxCandidates bounds the number of OCR runs
func WithMaxCandidates(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxCandidates = n
		}
	}
}

// NewPipeline creates a scan pipeline over engine
func NewPipeline(engine ocr.Engine, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine:        engine,
		logger:        logger,
		now:           time.Now,
		psms:          DefaultPSMs,
		maxCandidates: DefaultMaxCandidates,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Engine returns the name of the OCR engine
func (p *Pipeline) Engine() string {
	return p.engine.Name()
}

type plan struct {
	preset imaging.Preset
	psm    int
}

// Scan recognizes a business card photo. A photo without any recognizable
// text is not an error: the report has Recognized=false.
func (p *Pipeline) Scan(ctx context.Context, data []byte) (*Report, error) {
	start := p.now()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	if cfg.Width*cfg.Height > MaxSourcePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	quality := imaging.Analyze(imaging.Grayscale(img))
	plans := p.plan(imaging.SelectPresets(quality))

	report := &Report{
		Engine:     p.engine.Name(),
		Quality:    quality,
		Candidates: make([]Candidate, 0, len(plans)),
	}

	var (
		best     = -1
		lastErr  error
		prepared = make(map[string][]byte)
	)
	for _, pl := range plans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		encoded, ok := prepared[pl.preset.Name]
		if !ok {
			encoded, err = imaging.EncodePNG(pl.preset.Apply(img))
			if err != nil {
				return nil, fmt.Errorf("failed to prepare image: %w", err)
			}
			prepared[pl.preset.Name] = encoded
		}

		candidate := Candidate{Preset: pl.preset.Name, PSM: pl.psm}

		res, err := p.engine.Recognize(ctx, p.input(encoded, pl))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			p.logger.Warn("ocr candidate failed",
				slog.String("preset", pl.preset.Name),
				slog.Int("psm", pl.psm),
				slog.Any("error", err))
			lastErr = err
			candidate.Error = err.Error()
			report.Candidates = append(report.Candidates, candidate)
			continue
		}

		fields := cardparse.Parse(res.Text)
		candidate.TextLength = len([]rune(res.Text))
		candidate.OCRConfidence = res.Confidence
		candidate.FieldScore = fields.Score()
		if !res.Empty() {
			candidate.Score = ocrWeight*res.Confidence + fieldWeight*candidate.FieldScore
		}
		report.Candidates = append(report.Candidates, candidate)

		// Ничья достается более раннему кандидату
		if !res.Empty() && (best < 0 || candidate.Score > report.Score) {
			best = len(report.Candidates) - 1
			report.Score = candidate.Score
			report.Preset = pl.preset.Name
			report.PSM = pl.psm
			report.Text = res.Text
			report.Fields = fields
		}
	}

	if best < 0 && lastErr != nil && allFailed(report.Candidates) {
		return nil, fmt.Errorf("failed to recognize image: %w", lastErr)
	}

	report.Recognized = best >= 0
	if !report.Recognized {
		report.Fields = cardparse.Parse("")
	}
	report.Levels = report.Fields.Levels()
	report.DurationMS = p.now().Sub(start).Milliseconds()

	p.logger.Info("scan completed",
		slog.String("format", format),
		slog.Bool("recognized", report.Recognized),
		slog.String("preset", report.Preset),
		slog.Int("psm", report.PSM),
		slog.Float64("score", report.Score),
		slog.Int("candidates", len(report.Candidates)),
		slog.Int64("duration_ms", report.DurationMS))

	return report, nil
}

// plan lists preset and PSM combinations in order, bounded by maxCandidates
func (p *Pipeline) plan(presets []imaging.Preset) []plan {
	plans := make([]plan, 0, p.maxCandidates)
	for _, preset := range presets {
		for _, psm := range p.psms {
			if len(plans) == p.maxCandidates {
				return plans
			}
			plans = append(plans, plan{preset: preset, psm: psm})
		}
	}
	return plans
}

func (p *Pipeline) input(encoded []byte, pl plan) ocr.Input {
	opts := []ocr.InputOption{
		ocr.WithID(fmt.Sprintf("%s/%d", pl.preset.Name, pl.psm)),
		ocr.WithDPI(DefaultDPI),
		ocr.WithTesseractPSM(pl.psm),
		ocr.WithPreserveInterwordSpaces(),
	}
	if len(p.languages) > 0 {
		opts = append(opts, ocr.WithLanguages(p.languages...))
	}
	if p.whitelist != "" {
		opts = append(opts, ocr.WithTesseractWhitelist(p.whitelist))
	}
	return ocr.NewInput(encoded, opts...)
}

func allFailed(candidates []Candidate) bool {
	for _, c := range candidates {
		if c.Error == "" {
			return false
		}
	}
	return true
}
