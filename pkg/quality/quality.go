package quality

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Band is the coarse feedback bucket derived from the score. Thresholds are
// inclusive at the lower bound of each band.
type Band uint8

const (
	BandPoor      Band = 0
	BandFair      Band = 1
	BandGood      Band = 2
	BandExcellent Band = 3
)

var BandMap = map[Band]string{
	BandPoor:      "Poor",
	BandFair:      "Fair",
	BandGood:      "Good",
	BandExcellent: "Excellent",
}

func (b Band) String() string {
	return BandMap[b]
}

const (
	brightnessTarget = 127.0
	contrastScale    = 64.0
	brightnessWeight = 0.4
	contrastWeight   = 0.6

	// A sub-score below this earns a diagnostic hint.
	hintScore = 0.7

	// Submissions scoring below this are rejected outright.
	GateScore = 0.5

	// Frames larger than this are downscaled before scoring.
	maxScoreDimension = 1024
)

const (
	HintPoorLighting = "Poor lighting"
	HintLowContrast  = "Low contrast"
)

// Result is a heuristic [0,1] measure combining brightness-centering and
// contrast spread of an image. It makes no claim of calibrated accuracy;
// it exists to catch obviously unusable captures early.
type Result struct {
	Score      float64  `json:"score"`
	Band       Band     `json:"-"`
	Feedback   string   `json:"feedback"`
	Brightness float64  `json:"brightness"`
	Contrast   float64  `json:"contrast"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Hints      []string `json:"hints,omitempty"`
}

func (r Result) AboveGate() bool {
	return r.Score >= GateScore
}

// Estimate scores a decoded image. Per-pixel luminance is (R+G+B)/3; the
// brightness score rewards a mean centered on 127 and the contrast score is
// the population standard deviation scaled by 64, capped at 1.
func Estimate(img image.Image) Result {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	total := float64(width * height)
	if total == 0 {
		return Result{Band: BandPoor, Feedback: BandPoor.String()}
	}

	var sum, sumSq float64
	pix := nrgba.Pix
	for i := 0; i < len(pix); i += 4 {
		lum := (float64(pix[i]) + float64(pix[i+1]) + float64(pix[i+2])) / 3
		sum += lum
		sumSq += lum * lum
	}

	brightness := sum / total
	variance := sumSq/total - brightness*brightness
	if variance < 0 {
		variance = 0
	}
	contrast := math.Sqrt(variance)

	brightnessScore := clamp01(1 - math.Abs(brightness-brightnessTarget)/brightnessTarget)
	contrastScore := math.Min(contrast/contrastScale, 1)
	score := brightnessWeight*brightnessScore + contrastWeight*contrastScore

	band := BandFor(score)

	var hints []string
	if brightnessScore < hintScore {
		hints = append(hints, HintPoorLighting)
	}
	if contrastScore < hintScore {
		hints = append(hints, HintLowContrast)
	}

	return Result{
		Score:      score,
		Band:       band,
		Feedback:   band.String(),
		Brightness: brightness,
		Contrast:   contrast,
		Width:      width,
		Height:     height,
		Hints:      hints,
	}
}

// EstimateBytes decodes an encoded image and scores it. Oversized frames are
// fitted into maxScoreDimension first so scoring stays cheap for full
// resolution uploads.
func EstimateBytes(data []byte) (Result, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}

	bounds := img.Bounds()
	origWidth, origHeight := bounds.Dx(), bounds.Dy()
	if origWidth > maxScoreDimension || origHeight > maxScoreDimension {
		img = imaging.Fit(img, maxScoreDimension, maxScoreDimension, imaging.Lanczos)
	}

	result := Estimate(img)
	result.Width = origWidth
	result.Height = origHeight
	return result, nil
}

func BandFor(score float64) Band {
	switch {
	case score >= 0.8:
		return BandExcellent
	case score >= 0.6:
		return BandGood
	case score >= 0.4:
		return BandFair
	default:
		return BandPoor
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
