// Package models holds the result shapes shared between the engine, the
// exercise evaluators, and downstream consumers. SessionResult is the stable,
// serializable contract handed to the external persistence layer.
package models

import (
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/statistics"
)

// CriterionResult is the outcome of one named geometric check against a single
// frame. Results are created fresh per frame and never persisted beyond the
// frame's FrameResult.
type CriterionResult struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Passed   bool    `json:"passed"`
	Measured float64 `json:"measured"`
	// Score is the criterion's contribution in [0,100]: 100 when passed,
	// deviation-graded partial credit when not.
	Score float64 `json:"score"`
	// Feedback is the advisory shown when this criterion fails badly enough.
	Feedback string `json:"feedback,omitempty"`
}

// FrameResult is the per-frame output of Session.Process.
type FrameResult struct {
	Score    int      `json:"score"`
	RepCount int      `json:"rep_count"`
	Phase    string   `json:"phase"`
	Feedback []string `json:"feedback,omitempty"`
	// Evaluated is false when the visibility gate rejected the frame; such
	// frames carry a position advisory and do not enter the session average.
	Evaluated bool              `json:"evaluated"`
	Criteria  []CriterionResult `json:"criteria,omitempty"`
}

// SessionDigest summarizes the retained frame-score sequence.
type SessionDigest struct {
	MinScore float64 `json:"min_score"`
	MaxScore float64 `json:"max_score"`
	StdDev   float64 `json:"std_dev"`

	// BootstrapCI is populated when enough evaluated frames exist to make a
	// resampled interval meaningful.
	BootstrapCI *statistics.ConfidenceInterval `json:"bootstrap_ci,omitempty"`
}

// SessionResult is computed once at session end; it is read-only and
// JSON-stable.
type SessionResult struct {
	Exercise        string        `json:"exercise"`
	OverallScore    int           `json:"overall_score"`
	RepCount        int           `json:"rep_count"`
	FrameCount      int           `json:"frame_count"`
	EvaluatedFrames int           `json:"evaluated_frames"`
	Digest          SessionDigest `json:"digest"`
}
