package quality

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"
)

func uniformImage(value uint8, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: value, G: value, B: value, A: 255})
		}
	}
	return img
}

func checkerboardImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := uint8(0)
			if (x+y)%2 == 0 {
				value = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: value, G: value, B: value, A: 255})
		}
	}
	return img
}

func TestEstimate_MidGray(t *testing.T) {
	// Arrange
	img := uniformImage(127, 32, 32)

	// Act
	result := Estimate(img)

	// Assert
	if math.Abs(result.Brightness-127) > 0.001 {
		t.Errorf("expected brightness 127, got %f", result.Brightness)
	}
	if result.Contrast > 0.001 {
		t.Errorf("expected zero contrast, got %f", result.Contrast)
	}
	if math.Abs(result.Score-0.4) > 0.001 {
		t.Errorf("expected score 0.4, got %f", result.Score)
	}
	if result.Band != BandFair {
		t.Errorf("expected Fair band, got %s", result.Band)
	}
}

func TestEstimate_CheckerboardSaturatesContrast(t *testing.T) {
	// Arrange
	img := checkerboardImage(32, 32)

	// Act
	result := Estimate(img)

	// Assert
	if math.Abs(result.Contrast-127.5) > 0.001 {
		t.Errorf("expected contrast 127.5, got %f", result.Contrast)
	}
	if result.Score < 0.6 {
		t.Errorf("expected score of at least 0.6 with saturated contrast, got %f", result.Score)
	}
	if result.Band != BandExcellent {
		t.Errorf("expected Excellent band, got %s", result.Band)
	}
}

func TestEstimate_ClampsBrightnessScore(t *testing.T) {
	// Arrange: pure white pushes the raw brightness score below zero.
	img := uniformImage(255, 16, 16)

	// Act
	result := Estimate(img)

	// Assert
	if result.Score < 0 {
		t.Errorf("expected non-negative score, got %f", result.Score)
	}
	if result.Band != BandPoor {
		t.Errorf("expected Poor band, got %s", result.Band)
	}
}

func TestEstimate_Hints(t *testing.T) {
	// Arrange: uniform dark image is both underlit and flat.
	img := uniformImage(20, 16, 16)

	// Act
	result := Estimate(img)

	// Assert
	if len(result.Hints) != 2 {
		t.Fatalf("expected 2 hints, got %v", result.Hints)
	}
	if result.Hints[0] != HintPoorLighting || result.Hints[1] != HintLowContrast {
		t.Errorf("unexpected hints: %v", result.Hints)
	}
}

func twoToneImage(low, high uint8, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := low
			if (x+y)%2 == 0 {
				value = high
			}
			img.SetNRGBA(x, y, color.NRGBA{R: value, G: value, B: value, A: 255})
		}
	}
	return img
}

func TestEstimate_HintsFollowSubScores(t *testing.T) {
	// Arrange: mean 85 gives brightnessScore ~0.67, below the 0.7 hint line,
	// while a spread of 45 keeps contrastScore ~0.70 just above it.
	dim := twoToneImage(40, 130, 16, 16)
	sharp := checkerboardImage(16, 16)

	// Act
	dimResult := Estimate(dim)
	sharpResult := Estimate(sharp)

	// Assert
	if len(dimResult.Hints) != 1 || dimResult.Hints[0] != HintPoorLighting {
		t.Errorf("expected only a lighting hint, got %v", dimResult.Hints)
	}
	if len(sharpResult.Hints) != 0 {
		t.Errorf("expected no hints for a bright high-contrast image, got %v", sharpResult.Hints)
	}
}

func TestBandFor_InclusiveLowerBounds(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0.8, BandExcellent},
		{0.79, BandGood},
		{0.6, BandGood},
		{0.59, BandFair},
		{0.4, BandFair},
		{0.39, BandPoor},
		{0, BandPoor},
	}

	for _, tc := range cases {
		if got := BandFor(tc.score); got != tc.want {
			t.Errorf("BandFor(%f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestEstimateBytes_ReportsOriginalDimensions(t *testing.T) {
	// Arrange: larger than the scoring cap so the downscale path runs.
	img := checkerboardImage(1400, 700)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	// Act
	result, err := EstimateBytes(buf.Bytes())

	// Assert
	if err != nil {
		t.Fatalf("EstimateBytes failed: %v", err)
	}
	if result.Width != 1400 || result.Height != 700 {
		t.Errorf("expected original dimensions 1400x700, got %dx%d", result.Width, result.Height)
	}
}

func TestEstimateBytes_RejectsGarbage(t *testing.T) {
	if _, err := EstimateBytes([]byte("not an image")); err == nil {
		t.Error("expected decode error for garbage input")
	}
}
