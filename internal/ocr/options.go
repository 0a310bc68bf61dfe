package ocr

import "strconv"

// Tesseract page segmentation modes used by the scan pipeline.
// See https://tesseract-ocr.github.io/tessdoc/ImproveQuality.html#page-segmentation-method
const (
	PSMAuto        = 3
	PSMSingleBlock = 6
	PSMSparseText  = 11
)

// InputOption mutates an OCR input.
type InputOption func(*Input)

// WithID sets the input ID echoed back in the result.
func WithID(id string) InputOption {
	return func(in *Input) { in.ID = id }
}

// WithLanguages sets language hints on the OCR input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithDPI overrides the DPI value on the OCR input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithTesseractPSM sets the page segmentation mode (PSM) variable for Tesseract.
func WithTesseractPSM(mode int) InputOption {
	return withVariable("tessedit_pageseg_mode", strconv.Itoa(mode))
}

// WithTesseractWhitelist restricts recognition to the provided characters.
func WithTesseractWhitelist(chars string) InputOption {
	return withVariable("tessedit_char_whitelist", chars)
}

// WithPreserveInterwordSpaces keeps runs of spaces between words.
func WithPreserveInterwordSpaces() InputOption {
	return withVariable("preserve_interword_spaces", "1")
}

func withVariable(name, value string) InputOption {
	return func(in *Input) {
		if in.Metadata == nil {
			in.Metadata = make(map[string]string)
		}
		in.Metadata[name] = value
	}
}
