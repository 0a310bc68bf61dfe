package imaging

import (
	"image"
	"math"
)

// Quality thresholds used to derive the flags of Quality
const (
	DarkBrightness     = 80
	BrightBrightness   = 200
	LowContrastRMS     = 40
	BlurryLaplacianVar = 100
	NoisySigma         = 10
)

// Quality holds simple metrics of a grayscale photo
type Quality struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Brightness  float64 `json:"brightness"`   // средняя яркость 0..255
	Contrast    float64 `json:"contrast"`     // RMS-контраст (стандартное отклонение)
	Sharpness   float64 `json:"sharpness"`    // дисперсия лапласиана
	Noise       float64 `json:"noise"`        // оценка сигмы шума
	TooDark     bool    `json:"too_dark"`     // TooDark средняя яркость ниже DarkBrightness
	TooBright   bool    `json:"too_bright"`   // TooBright средняя яркость выше BrightBrightness
	LowContrast bool    `json:"low_contrast"` // LowContrast контраст ниже LowContrastRMS
	Blurry      bool    `json:"blurry"`       // Blurry резкость ниже BlurryLaplacianVar
	Noisy       bool    `json:"noisy"`        // Noisy шум выше NoisySigma
}

// Analyze measures brightness, contrast, sharpness and noise of g
func Analyze(g *image.Gray) Quality {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	q := Quality{Width: w, Height: h}
	if w == 0 || h == 0 {
		return q
	}

	n := float64(w * h)
	var sum, sumSq float64
	for y := range h {
		for _, v := range g.Pix[y*g.Stride : y*g.Stride+w] {
			fv := float64(v)
			sum += fv
			sumSq += fv * fv
		}
	}
	q.Brightness = sum / n
	q.Contrast = math.Sqrt(math.Max(0, sumSq/n-q.Brightness*q.Brightness))

	if w >= 3 && h >= 3 {
		q.Sharpness = laplacianVariance(g)
		q.Noise = noiseSigma(g)
	}

	q.TooDark = q.Brightness < DarkBrightness
	q.TooBright = q.Brightness > BrightBrightness
	q.LowContrast = q.Contrast < LowContrastRMS
	q.Blurry = q.Sharpness < BlurryLaplacianVar
	q.Noisy = q.Noise > NoisySigma

	return q
}

// laplacianVariance is the variance of the 4-neighbour Laplacian over interior pixels
func laplacianVariance(g *image.Gray) float64 {
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	px := func(x, y int) float64 { return float64(g.Pix[y*g.Stride+x]) }

	var sum, sumSq float64
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			l := px(x-1, y) + px(x+1, y) + px(x, y-1) + px(x, y+1) - 4*px(x, y)
			sum += l
			sumSq += l * l
		}
	}

	n := float64((w - 2) * (h - 2))
	mean := sum / n
	return sumSq/n - mean*mean
}

// noiseSigma estimates Gaussian noise with Immerkær's method: the image is
// convolved with a mask that cancels structure up to second order
func noiseSigma(g *image.Gray) float64 {
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	px := func(x, y int) float64 { return float64(g.Pix[y*g.Stride+x]) }

	var sum float64
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			v := px(x-1, y-1) - 2*px(x, y-1) + px(x+1, y-1) -
				2*px(x-1, y) + 4*px(x, y) - 2*px(x+1, y) +
				px(x-1, y+1) - 2*px(x, y+1) + px(x+1, y+1)
			sum += math.Abs(v)
		}
	}

	return sum * math.Sqrt(math.Pi/2) / (6 * float64(w-2) * float64(h-2))
}
