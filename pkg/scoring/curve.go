package scoring

import "github.com/swinglab/swinglab/pkg/kinematics"

// FindPeak returns the index and value of the maximum sample. Ties resolve
// to the lowest index. An empty curve yields (0, 0).
func FindPeak(c kinematics.Curve) (int, float64) {
	if len(c) == 0 {
		return 0, 0
	}
	idx, peak := 0, c[0]
	for i := 1; i < len(c); i++ {
		if c[i] > peak {
			idx, peak = i, c[i]
		}
	}
	return idx, peak
}

// FindDecelStart returns the first index after peakIndex whose sample falls
// below 90% of the peak. If the curve never drops, it returns
// min(peakIndex+5, len-1). An out-of-range peakIndex is clamped to the curve.
func FindDecelStart(c kinematics.Curve, peakIndex int) int {
	d := Defaults()
	return findDecelStart(c, peakIndex, d.DecelDropRatio, d.DecelFallbackSamples)
}

func findDecelStart(c kinematics.Curve, peakIndex int, ratio float64, fallback int) int {
	if len(c) == 0 {
		return 0
	}
	peakIndex = max(0, min(peakIndex, len(c)-1))
	threshold := c[peakIndex] * ratio
	for i := peakIndex + 1; i < len(c); i++ {
		if c[i] < threshold {
			return i
		}
	}
	return min(peakIndex+fallback, len(c)-1)
}
