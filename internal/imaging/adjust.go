package imaging

import "image"

// NormalizeContrast stretches the range between the 1st and 99th percentile
// of g to 0..255
func NormalizeContrast(g *image.Gray) *image.Gray {
	hist, total := histogram(g)
	if total == 0 {
		return clone(g)
	}

	low := percentile(hist, total, 0.01)
	high := percentile(hist, total, 0.99)
	if high <= low {
		return clone(g)
	}

	var lut [256]uint8
	scale := 255 / float64(high-low)
	for v := range 256 {
		lut[v] = clamp(float64(v-low) * scale)
	}

	return applyLUT(g, &lut)
}

// AdjustBrightness adds delta to every pixel
func AdjustBrightness(g *image.Gray, delta int) *image.Gray {
	var lut [256]uint8
	for v := range 256 {
		lut[v] = uint8(clampInt(v+delta, 0, 255))
	}
	return applyLUT(g, &lut)
}

// AutoBrightness shifts the mean brightness of g towards target
func AutoBrightness(g *image.Gray, target float64) *image.Gray {
	q := Analyze(g)
	return AdjustBrightness(g, int(target-q.Brightness))
}

func applyLUT(g *image.Gray, lut *[256]uint8) *image.Gray {
	dst := image.NewGray(g.Bounds())
	w, h := g.Bounds().Dx(), g.Bounds().Dy()

	for y := range h {
		src := g.Pix[y*g.Stride : y*g.Stride+w]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range src {
			out[x] = lut[v]
		}
	}

	return dst
}

// percentile returns the smallest value whose cumulative count reaches p of total
func percentile(hist [256]int, total int, p float64) int {
	target := int(p * float64(total))
	if target < 1 {
		target = 1
	}

	cum := 0
	for v, n := range hist {
		cum += n
		if cum >= target {
			return v
		}
	}
	return 255
}
