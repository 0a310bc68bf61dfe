package imaging

import "image"

// DefaultThreshold is the global threshold of the standard preset
const DefaultThreshold = 128

// Threshold maps pixels brighter than t to white and the rest to black
func Threshold(g *image.Gray, t uint8) *image.Gray {
	dst := image.NewGray(g.Bounds())
	w, h := g.Bounds().Dx(), g.Bounds().Dy()

	for y := range h {
		src := g.Pix[y*g.Stride : y*g.Stride+w]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range src {
			if v > t {
				out[x] = 255
			}
		}
	}

	return dst
}

// OtsuThreshold returns the threshold maximizing between-class variance of
// the histogram of g
func OtsuThreshold(g *image.Gray) uint8 {
	hist, total := histogram(g)
	if total == 0 {
		return DefaultThreshold
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i * n)
	}

	var (
		sumB, wB   float64
		maxBetween float64
		threshold  uint8
	)
	for t := range 256 {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}

		sumB += float64(t * hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)

		if between > maxBetween {
			maxBetween = between
			threshold = uint8(t)
		}
	}

	return threshold
}

// OtsuBinarize thresholds g at its Otsu threshold
func OtsuBinarize(g *image.Gray) *image.Gray {
	return Threshold(g, OtsuThreshold(g))
}

// AdaptiveThreshold binarizes each pixel against the mean of the window
// around it minus c. Uneven lighting across the card does not shift the
// result the way a global threshold does.
func AdaptiveThreshold(g *image.Gray, window int, c float64) *image.Gray {
	if window < 3 {
		window = 15
	}
	if window%2 == 0 {
		window++
	}
	half := window / 2

	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)
	if w == 0 || h == 0 {
		return dst
	}

	// integral[(y+1)*(w+1)+(x+1)] = сумма пикселей в прямоугольнике [0..x]×[0..y]
	stride := w + 1
	integral := make([]int64, (w+1)*(h+1))
	for y := range h {
		var rowSum int64
		for x := range w {
			rowSum += int64(g.Pix[y*g.Stride+x])
			integral[(y+1)*stride+x+1] = integral[y*stride+x+1] + rowSum
		}
	}

	for y := range h {
		y0 := clampInt(y-half, 0, h-1)
		y1 := clampInt(y+half, 0, h-1)
		for x := range w {
			x0 := clampInt(x-half, 0, w-1)
			x1 := clampInt(x+half, 0, w-1)

			count := float64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*stride+x1+1] -
				integral[y0*stride+x1+1] -
				integral[(y1+1)*stride+x0] +
				integral[y0*stride+x0]

			mean := float64(sum) / count
			if float64(g.Pix[y*g.Stride+x]) > mean-c {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}

	return dst
}
