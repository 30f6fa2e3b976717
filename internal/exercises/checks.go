package exercises

import (
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/geometry"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// rangeCriterion grades a measured angle against [lo, hi]. Inside the range
// the criterion scores 100; outside, the score decays linearly to 0 over one
// range-width of deviation. Deterministic and clamped to [0,100].
func rangeCriterion(name string, measured, lo, hi float64, feedback string) models.CriterionResult {
	passed := measured >= lo && measured <= hi
	score := 100.0
	if !passed {
		falloff := hi - lo
		dev := lo - measured
		if measured > hi {
			dev = measured - hi
		}
		score = geometry.Clamp(100*(1-dev/falloff), 0, 100)
	}
	return models.CriterionResult{
		Name:     name,
		Weight:   1,
		Passed:   passed,
		Measured: measured,
		Score:    score,
		Feedback: feedback,
	}
}

// minCriterion grades a measured value that must reach at least min. Below
// min the score decays linearly to 0 over the falloff width.
func minCriterion(name string, measured, min, falloff float64, feedback string) models.CriterionResult {
	passed := measured >= min
	score := 100.0
	if !passed {
		score = geometry.Clamp(100*(1-(min-measured)/falloff), 0, 100)
	}
	return models.CriterionResult{
		Name:     name,
		Weight:   1,
		Passed:   passed,
		Measured: measured,
		Score:    score,
		Feedback: feedback,
	}
}

// offsetCriterion grades a non-negative offset that must stay within
// tolerance. Beyond tolerance the score decays linearly to 0 over one further
// tolerance-width.
func offsetCriterion(name string, measured, tolerance float64, feedback string) models.CriterionResult {
	passed := measured <= tolerance
	score := 100.0
	if !passed {
		score = geometry.Clamp(100*(1-(measured-tolerance)/tolerance), 0, 100)
	}
	return models.CriterionResult{
		Name:     name,
		Weight:   1,
		Passed:   passed,
		Measured: measured,
		Score:    score,
		Feedback: feedback,
	}
}

// jointAngleMean averages the left- and right-side instance of a three-point
// joint angle, smoothing out single-side detector jitter.
func jointAngleMean(f *pose.Frame, la, lb, lc, ra, rb, rc pose.Index) float64 {
	left := geometry.Angle(f.Point(la), f.Point(lb), f.Point(lc))
	right := geometry.Angle(f.Point(ra), f.Point(rb), f.Point(rc))
	return (left + right) / 2
}

// maxSide returns the larger of the two per-side measurements.
func maxSide(left, right float64) float64 {
	if left > right {
		return left
	}
	return right
}
