// Package scoring converts per-frame criteria results into a 0-100 frame
// score and reduces the retained frame-score sequence into the session score
// and its descriptive statistics.
package scoring

import (
	"math"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
)

// FrameScore computes the weighted mean of the criterion scores, rounded to
// the nearest integer. Criteria with non-positive weight count as weight 1.0,
// so the unweighted case reduces to round(100 * passed / total) when scores
// are binary. An empty criteria list scores 0. The result is clamped to
// [0,100] and is stable under criteria reordering.
func FrameScore(criteria []models.CriterionResult) int {
	if len(criteria) == 0 {
		return 0
	}
	totalWeight := 0.0
	weightedSum := 0.0
	for _, c := range criteria {
		w := c.Weight
		if w <= 0 {
			w = 1.0
		}
		weightedSum += c.Score * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return clampScore(math.Round(weightedSum / totalWeight))
}

// SessionScore reduces retained frame scores to one number: the arithmetic
// mean rounded to nearest integer. An empty sequence yields the 0 sentinel,
// never an error or NaN.
func SessionScore(frameScores []int) int {
	if len(frameScores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range frameScores {
		sum += s
	}
	return clampScore(math.Round(float64(sum) / float64(len(frameScores))))
}

// Mean computes the arithmetic mean of a float64 slice. Returns 0 for empty
// input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev computes the population standard deviation. Returns 0 for empty
// input.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// MinMax returns the smallest and largest value. Returns (0, 0) for empty
// input.
func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
