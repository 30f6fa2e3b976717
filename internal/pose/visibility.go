package pose

// Visibility thresholds used system-wide. These are the single source of
// truth; no other code should duplicate them.
const (
	// DisplayThreshold is the lower bound at which a landmark is safe to
	// display or track.
	DisplayThreshold = 0.5

	// ScoringThreshold is the higher bound at which a landmark is safe to
	// feed into angle-based scoring.
	ScoringThreshold = 0.7
)

// Visible reports whether the landmark's detection confidence meets the given
// threshold.
func (lm Landmark) Visible(threshold float64) bool {
	return lm.Visibility >= threshold
}

// AllVisible reports whether every listed joint passes the threshold. When it
// returns false the frame must not be scored: failing frames get a position
// advisory instead of a numeric penalty, and are excluded from the session
// average so detector dropout never skews the score.
func (f *Frame) AllVisible(indices []Index, threshold float64) bool {
	for _, i := range indices {
		if !f.Landmarks[i].Visible(threshold) {
			return false
		}
	}
	return true
}
