package imaging

import (
	"image"
	"math"
	"slices"
)

// MedianFilter replaces every pixel with the median of its (2r+1)² window.
// Edges are handled by replicating border pixels.
func MedianFilter(g *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		return clone(g)
	}

	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)

	size := (2*radius + 1) * (2*radius + 1)
	window := make([]uint8, 0, size)

	for y := range h {
		for x := range w {
			window = window[:0]
			for dy := -radius; dy <= radius; dy++ {
				yy := clampInt(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					xx := clampInt(x+dx, 0, w-1)
					window = append(window, g.Pix[yy*g.Stride+xx])
				}
			}
			slices.Sort(window)
			dst.Pix[y*dst.Stride+x] = window[len(window)/2]
		}
	}

	return dst
}

// GaussianBlur applies a separable Gaussian blur with the given sigma
func GaussianBlur(g *image.Gray, sigma float64) *image.Gray {
	if sigma <= 0 {
		return clone(g)
	}

	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := make([]float64, w*h)

	// горизонтальный проход
	for y := range h {
		for x := range w {
			var acc float64
			for k, weight := range kernel {
				xx := clampInt(x+k-radius, 0, w-1)
				acc += weight * float64(g.Pix[y*g.Stride+xx])
			}
			tmp[y*w+x] = acc
		}
	}

	// вертикальный проход
	dst := image.NewGray(b)
	for y := range h {
		for x := range w {
			var acc float64
			for k, weight := range kernel {
				yy := clampInt(y+k-radius, 0, h-1)
				acc += weight * tmp[yy*w+x]
			}
			dst.Pix[y*dst.Stride+x] = clamp(acc)
		}
	}

	return dst
}

// BilateralFilter smooths g while keeping edges: neighbours are weighted by
// both spatial distance (sigmaSpace) and intensity difference (sigmaRange)
func BilateralFilter(g *image.Gray, radius int, sigmaSpace, sigmaRange float64) *image.Gray {
	if radius <= 0 || sigmaSpace <= 0 || sigmaRange <= 0 {
		return clone(g)
	}

	side := 2*radius + 1
	spatial := make([]float64, side*side)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*side+dx+radius] = math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}

	var rangeWeights [256]float64
	for d := range 256 {
		fd := float64(d)
		rangeWeights[d] = math.Exp(-fd * fd / (2 * sigmaRange * sigmaRange))
	}

	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)

	for y := range h {
		for x := range w {
			center := int(g.Pix[y*g.Stride+x])
			var acc, norm float64

			for dy := -radius; dy <= radius; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					v := int(g.Pix[yy*g.Stride+xx])
					diff := v - center
					if diff < 0 {
						diff = -diff
					}
					weight := spatial[(dy+radius)*side+dx+radius] * rangeWeights[diff]
					acc += weight * float64(v)
					norm += weight
				}
			}

			dst.Pix[y*dst.Stride+x] = clamp(acc / norm)
		}
	}

	return dst
}

// UnsharpMask sharpens g: out = v + amount·(v - blur(v))
func UnsharpMask(g *image.Gray, sigma, amount float64) *image.Gray {
	if sigma <= 0 || amount == 0 {
		return clone(g)
	}

	blurred := GaussianBlur(g, sigma)

	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)

	for y := range h {
		for x := range w {
			v := float64(g.Pix[y*g.Stride+x])
			bv := float64(blurred.Pix[y*blurred.Stride+x])
			dst.Pix[y*dst.Stride+x] = clamp(v + amount*(v-bv))
		}
	}

	return dst
}

// gaussianKernel returns a normalized 1-D kernel of radius ceil(3·sigma)
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)

	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}
