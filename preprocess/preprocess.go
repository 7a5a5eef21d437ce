// Package preprocess conditions photographed PAN cards for OCR. Card
// photos arrive with shadows, color casts and uneven lighting; Tesseract
// wants flat high-contrast text, so everything funnels through grayscale,
// a light denoise and an automatically thresholded black/white cut.
package preprocess

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ForOCR runs the full conditioning chain over one card frame. A light
// blur followed by sharpening approximates an edge-preserving denoise
// with the primitives imaging offers.
func ForOCR(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	smoothed := imaging.Blur(gray, 0.6)
	sharpened := imaging.Sharpen(smoothed, 1.0)
	contrasted := imaging.AdjustContrast(sharpened, 20)
	return Binarize(contrasted)
}

// Binarize cuts an image to pure black and white at a threshold chosen by
// Otsu's method over the brightness histogram, so dark card stock and
// washed-out scans land on workable thresholds without manual tuning.
func Binarize(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	threshold := otsuThreshold(histogram(gray))

	return imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		if c.R > threshold {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	})
}

// histogram counts pixels per brightness level. The input is grayscale,
// so the red channel carries the luminance.
func histogram(img *image.NRGBA) [256]int {
	var hist [256]int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[img.Pix[img.PixOffset(x, y)]]++
		}
	}
	return hist
}

// otsuThreshold picks the brightness split that maximizes between-class
// variance. An empty histogram yields the midpoint.
func otsuThreshold(hist [256]int) uint8 {
	total := 0
	for _, n := range hist {
		total += n
	}
	if total == 0 {
		return 127
	}

	var sum float64
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}

	var sumB, wB, best float64
	var threshold uint8
	for v := 0; v < 256; v++ {
		wB += float64(hist[v])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(v) * float64(hist[v])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			threshold = uint8(v)
		}
	}
	return threshold
}
