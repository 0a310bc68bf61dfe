package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputOptions(t *testing.T) {
	in := NewInput([]byte("img"),
		WithID("page-1"),
		WithLanguages("jpn", "eng"),
		WithDPI(300),
		WithTesseractPSM(PSMSingleBlock),
		WithTesseractWhitelist("0123456789"),
		WithPreserveInterwordSpaces(),
	)

	assert.Equal(t, "page-1", in.ID)
	assert.Equal(t, []string{"jpn", "eng"}, in.Languages)
	assert.Equal(t, 300, in.DPI)
	assert.Equal(t, map[string]string{
		"tessedit_pageseg_mode":     "6",
		"tessedit_char_whitelist":   "0123456789",
		"preserve_interword_spaces": "1",
	}, in.Metadata)
}

func TestWithLanguages_Copies(t *testing.T) {
	langs := []string{"eng"}
	in := NewInput(nil, WithLanguages(langs...))
	langs[0] = "changed"
	assert.Equal(t, []string{"eng"}, in.Languages)
}

func TestStatic_Recognize(t *testing.T) {
	engine := &Static{Text: "  山田 太郎\n\n株式会社サンプル  \n", Confidence: 0.8}

	res, err := engine.Recognize(context.Background(), NewInput(nil, WithID("x")))
	require.NoError(t, err)

	assert.Equal(t, "static", res.Engine)
	assert.Equal(t, "x", res.InputID)
	assert.Equal(t, "山田 太郎\n\n株式会社サンプル", res.Text)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "株式会社サンプル", res.Lines[1].Text)
	assert.Len(t, res.Words, 3)
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)
	assert.False(t, res.Empty())
}

func TestStatic_Empty(t *testing.T) {
	res, err := (&Static{}).Recognize(context.Background(), Input{})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Zero(t, res.Confidence)
}

func TestStatic_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Static{Text: "x"}).Recognize(ctx, Input{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMeanConfidence(t *testing.T) {
	assert.Zero(t, MeanConfidence(nil))
	assert.InDelta(t, 0.5, MeanConfidence([]Word{{Confidence: 0.2}, {Confidence: 0.8}}), 1e-9)
}
