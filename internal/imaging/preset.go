package imaging

import "image"

// Step is one grayscale filter of a preset
type Step func(*image.Gray) *image.Gray

// Preset is a named preprocessing sequence: scale, convert to grayscale,
// then apply Steps in order
type Preset struct {
	Name  string
	Steps []Step
	Scale float64
}

// Apply runs the preset on img
func (p Preset) Apply(img image.Image) *image.Gray {
	g := Grayscale(Upscale(img, p.Scale))
	for _, step := range p.Steps {
		g = step(g)
	}
	return g
}

// Preset names
const (
	PresetStandard   = "standard"
	PresetGray       = "gray"
	PresetOtsu       = "otsu"
	PresetAdaptive   = "adaptive"
	PresetDenoised   = "denoised"
	PresetSharpened  = "sharpened"
	PresetBrightness = "brightness"
)

// Standard is the baseline sequence: 2x upscale, grayscale, global threshold 128
var Standard = Preset{
	Name:  PresetStandard,
	Scale: 2,
	Steps: []Step{
		func(g *image.Gray) *image.Gray { return Threshold(g, DefaultThreshold) },
	},
}

// Gray leaves binarization to the OCR engine
var Gray = Preset{
	Name:  PresetGray,
	Scale: 2,
	Steps: []Step{NormalizeContrast},
}

// Otsu stretches contrast and binarizes at the Otsu threshold
var Otsu = Preset{
	Name:  PresetOtsu,
	Scale: 2,
	Steps: []Step{NormalizeContrast, OtsuBinarize},
}

// Adaptive handles uneven lighting and shadows across the card
var Adaptive = Preset{
	Name:  PresetAdaptive,
	Scale: 2,
	Steps: []Step{
		func(g *image.Gray) *image.Gray { return GaussianBlur(g, 1) },
		func(g *image.Gray) *image.Gray { return AdaptiveThreshold(g, 31, 10) },
	},
}

// Denoised removes sensor noise before binarization
var Denoised = Preset{
	Name:  PresetDenoised,
	Scale: 2,
	Steps: []Step{
		func(g *image.Gray) *image.Gray { return MedianFilter(g, 1) },
		func(g *image.Gray) *image.Gray { return BilateralFilter(g, 2, 3, 30) },
		NormalizeContrast,
		OtsuBinarize,
	},
}

// Sharpened restores soft edges of out-of-focus photos
var Sharpened = Preset{
	Name:  PresetSharpened,
	Scale: 2,
	Steps: []Step{
		func(g *image.Gray) *image.Gray { return UnsharpMask(g, 1.5, 1) },
		NormalizeContrast,
		OtsuBinarize,
	},
}

// Brightness evens out under- and overexposed photos before binarization
var Brightness = Preset{
	Name:  PresetBrightness,
	Scale: 2,
	Steps: []Step{
		func(g *image.Gray) *image.Gray { return AutoBrightness(g, 128) },
		NormalizeContrast,
		OtsuBinarize,
	},
}

// Presets lists every preset in default preference order
func Presets() []Preset {
	return []Preset{Otsu, Standard, Adaptive, Gray, Denoised, Sharpened, Brightness}
}

// SelectPresets orders every preset by how well it suits a photo of quality q
func SelectPresets(q Quality) []Preset {
	var preferred []Preset

	if q.TooDark || q.TooBright {
		preferred = append(preferred, Brightness)
	}
	if q.Noisy {
		preferred = append(preferred, Denoised)
	}
	if q.Blurry {
		preferred = append(preferred, Sharpened)
	}
	if q.LowContrast || q.TooDark || q.TooBright {
		preferred = append(preferred, Adaptive, Otsu)
	}

	seen := make(map[string]bool)
	ordered := make([]Preset, 0, len(Presets()))
	for _, p := range append(preferred, Presets()...) {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		ordered = append(ordered, p)
	}

	return ordered
}
