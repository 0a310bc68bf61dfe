package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/iudanet/cardkeeper/internal/cardparse"
	client "github.com/iudanet/cardkeeper/internal/client/api"
	"github.com/iudanet/cardkeeper/pkg/api"
)

func (c *Cli) runScan(ctx context.Context, args []string) error {
	fs := c.newFlagSet("scan")
	showText := fs.Bool("text", false, "Print recognized text")
	showCandidates := fs.Bool("candidates", false, "Print every OCR candidate")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: cardkeeper scan [--text] [--candidates] <file>", ErrUsage)
	}

	report, err := c.scan(ctx, positional[0])
	if err != nil {
		return err
	}

	c.printReport(report)

	if *showCandidates {
		c.io.Println()
		c.io.Println("Candidates:")
		for _, cand := range report.Candidates {
			if cand.Error != "" {
				c.io.Printf("  %-10s psm %-2d  error: %s\n", cand.Preset, cand.PSM, cand.Error)
				continue
			}
			c.io.Printf("  %-10s psm %-2d  ocr %.2f  fields %.2f  score %.3f\n",
				cand.Preset, cand.PSM, cand.OCRConfidence, cand.FieldScore, cand.Score)
		}
	}

	if *showText && report.Text != "" {
		c.io.Println()
		c.io.Println("Text:")
		c.io.Println(report.Text)
	}

	return nil
}

// scan отправляет фото на распознавание
func (c *Cli) scan(ctx context.Context, path string) (*api.ScanReport, error) {
	f, err := c.openFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	c.io.Println("Scanning...")
	report, err := c.api.Scan(ctx, path, f)
	if err != nil {
		if client.IsStatus(err, http.StatusNotImplemented) {
			return nil, fmt.Errorf("ocr is disabled on %s", c.api.BaseURL())
		}
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return report, nil
}

func (c *Cli) printReport(report *api.ScanReport) {
	if !report.Recognized {
		c.io.Println("No text recognized.")
		return
	}

	c.io.Printf("Engine: %s, preset %s, psm %d, score %.3f (%d ms)\n",
		report.Engine, report.Preset, report.PSM, report.Score, report.DurationMS)
	c.io.Println()

	for _, field := range cardparse.AllFields {
		v := report.Fields.Get(field)
		if v == "" {
			continue
		}
		c.io.Printf("  %-12s %-40s %s\n", field, v, report.Levels[field])
	}

	if len(report.Fields.Unparsed) > 0 {
		c.io.Println()
		c.io.Printf("Unparsed: %s\n", strings.Join(report.Fields.Unparsed, " / "))
	}
}
