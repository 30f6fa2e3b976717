// Package engine wires the per-frame evaluation pipeline: visibility gate,
// criteria evaluation, frame scoring, phase machine update, and feedback
// generation. One Session per trainee; processing is synchronous and
// single-threaded, performs no I/O, and holds no shared state, so concurrent
// trainees simply use independent Session instances.
package engine

import (
	"log/slog"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/exercises"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/feedback"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/phase"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/scoring"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/statistics"
)

// digestSeed fixes the bootstrap resampler so that replaying one frame
// sequence through two engine instances yields byte-identical results.
const digestSeed = 1

// DefaultConfidenceLevel is the bootstrap CI level used unless the caller
// overrides it at construction.
const DefaultConfidenceLevel = 0.95

// Session owns the evaluation state for one continuous exercise-tracking
// interval: the active phase machine, the rep count, and the retained
// frame-score sequence. Not safe for concurrent use.
type Session struct {
	evaluator   exercises.Evaluator
	machine     *phase.Machine
	confidence  float64
	frameScores []int
	frameCount  int
}

// New creates a session for the given evaluator, positioned at the exercise's
// initial phase.
func New(ev exercises.Evaluator) *Session {
	return NewWithConfidence(ev, DefaultConfidenceLevel)
}

// NewWithConfidence is New with an explicit bootstrap CI level for the
// session digest.
func NewWithConfidence(ev exercises.Evaluator, confidence float64) *Session {
	if confidence <= 0 || confidence >= 1 {
		confidence = DefaultConfidenceLevel
	}
	return &Session{
		evaluator:  ev,
		machine:    phase.NewMachine(ev.Phases()),
		confidence: confidence,
	}
}

// Process evaluates one frame to completion and returns its result. Frames
// whose required joints fail the scoring visibility threshold are not
// evaluated: they carry the position advisory, leave the phase machine
// untouched (a rep in progress stalls and resumes when visibility returns),
// and are excluded from the session average.
func (s *Session) Process(f *pose.Frame) models.FrameResult {
	s.frameCount++

	if !f.AllVisible(s.evaluator.RequiredJoints(), pose.ScoringThreshold) {
		slog.Debug("frame below visibility threshold",
			"exercise", s.evaluator.Type(),
			"timestamp_ms", f.TimestampMS)
		return models.FrameResult{
			RepCount:  s.machine.Reps(),
			Phase:     string(s.machine.Phase()),
			Feedback:  []string{feedback.VisibilityAdvisory},
			Evaluated: false,
		}
	}

	criteria := s.evaluator.Criteria(f)
	score := scoring.FrameScore(criteria)
	s.machine.Advance(f)
	advisories := feedback.ForCriteria(criteria)

	s.frameScores = append(s.frameScores, score)

	return models.FrameResult{
		Score:     score,
		RepCount:  s.machine.Reps(),
		Phase:     string(s.machine.Phase()),
		Feedback:  advisories,
		Evaluated: true,
		Criteria:  criteria,
	}
}

// RepCount returns the completed repetitions so far.
func (s *Session) RepCount() int {
	return s.machine.Reps()
}

// Phase returns the active motion phase.
func (s *Session) Phase() phase.Phase {
	return s.machine.Phase()
}

// Finish reduces the retained frame scores into the session result. It is
// idempotent and does not mutate session state; the caller discards the
// session afterwards.
func (s *Session) Finish() models.SessionResult {
	scores := make([]float64, len(s.frameScores))
	for i, v := range s.frameScores {
		scores[i] = float64(v)
	}

	lo, hi := scoring.MinMax(scores)
	digest := models.SessionDigest{
		MinScore: lo,
		MaxScore: hi,
		StdDev:   scoring.StdDev(scores),
	}
	if len(scores) >= statistics.MinSamples {
		ci := statistics.BootstrapCIWithSeed(scores, s.confidence, digestSeed)
		digest.BootstrapCI = &ci
	}

	result := models.SessionResult{
		Exercise:        string(s.evaluator.Type()),
		OverallScore:    scoring.SessionScore(s.frameScores),
		RepCount:        s.machine.Reps(),
		FrameCount:      s.frameCount,
		EvaluatedFrames: len(s.frameScores),
		Digest:          digest,
	}

	slog.Debug("session finished",
		"exercise", result.Exercise,
		"overall_score", result.OverallScore,
		"reps", result.RepCount,
		"frames", result.FrameCount,
		"evaluated", result.EvaluatedFrames)

	return result
}
