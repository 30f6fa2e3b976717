package engine

import (
	"math"
	"testing"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/exercises"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/feedback"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
	"github.com/stretchr/testify/require"
)

func put(f *pose.Frame, i pose.Index, x, y float64) {
	f.Landmarks[i].X = x
	f.Landmarks[i].Y = y
	f.Landmarks[i].Visibility = 1
}

func ray(f *pose.Frame, from, to pose.Index, deg, length float64) {
	lm := f.Landmarks[from]
	rad := deg * math.Pi / 180
	put(f, to, lm.X+length*math.Cos(rad), lm.Y+length*math.Sin(rad))
}

// squatFrame builds a symmetric, fully visible squat pose with the given knee
// and torso angles.
func squatFrame(kneeDeg, torsoDeg float64) *pose.Frame {
	f := &pose.Frame{}
	for i := range f.Landmarks {
		f.Landmarks[i].Visibility = 1
	}
	sides := []struct{ hip, knee, ankle, foot, shoulder pose.Index }{
		{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle, pose.LeftFootIndex, pose.LeftShoulder},
		{pose.RightHip, pose.RightKnee, pose.RightAnkle, pose.RightFootIndex, pose.RightShoulder},
	}
	for _, s := range sides {
		put(f, s.knee, 0.5, 0.5)
		ray(f, s.knee, s.ankle, 90, 0.4)
		ray(f, s.knee, s.hip, 90-kneeDeg, 0.4)
		put(f, s.foot, f.Landmarks[s.ankle].X+0.02, f.Landmarks[s.ankle].Y+0.02)
		hip := f.Landmarks[s.hip]
		knee := f.Landmarks[s.knee]
		dir := math.Atan2(knee.Y-hip.Y, knee.X-hip.X) * 180 / math.Pi
		ray(f, s.hip, s.shoulder, dir+torsoDeg, 0.5)
	}
	return f
}

// hidden makes every landmark of the frame drop below the scoring threshold.
func hidden(f *pose.Frame) *pose.Frame {
	for i := range f.Landmarks {
		f.Landmarks[i].Visibility = 0.2
	}
	return f
}

func newSquatSession(t *testing.T) *Session {
	t.Helper()
	ev, err := exercises.Create(exercises.TypeSquat, nil)
	require.NoError(t, err)
	return New(ev)
}

// repSweep is a smooth squat descent and return driving exactly one rep.
var repSweep = []float64{170, 150, 130, 115, 105, 100, 108, 115, 135, 155, 170}

func TestSession_SingleRep(t *testing.T) {
	s := newSquatSession(t)

	var last = struct{ reps int }{}
	for _, knee := range repSweep {
		res := s.Process(squatFrame(knee, 170))
		require.True(t, res.Evaluated)
		require.GreaterOrEqual(t, res.Score, 0)
		require.LessOrEqual(t, res.Score, 100)
		last.reps = res.RepCount
	}
	require.Equal(t, 1, last.reps)

	result := s.Finish()
	require.Equal(t, "squat", result.Exercise)
	require.Equal(t, 1, result.RepCount)
	require.Equal(t, len(repSweep), result.FrameCount)
	require.Equal(t, len(repSweep), result.EvaluatedFrames)
	require.GreaterOrEqual(t, result.OverallScore, 0)
	require.LessOrEqual(t, result.OverallScore, 100)
}

func TestSession_PerfectFramesScoreHundred(t *testing.T) {
	s := newSquatSession(t)

	res := s.Process(squatFrame(95, 160))
	require.Equal(t, 100, res.Score)
	require.Empty(t, res.Feedback)
}

func TestSession_InvisibleFrames(t *testing.T) {
	t.Run("gated frame carries the position advisory only", func(t *testing.T) {
		s := newSquatSession(t)

		res := s.Process(hidden(squatFrame(95, 160)))
		require.False(t, res.Evaluated)
		require.Equal(t, []string{feedback.VisibilityAdvisory}, res.Feedback)
		require.Empty(t, res.Criteria)
	})

	t.Run("gated frames are excluded from the session average", func(t *testing.T) {
		s := newSquatSession(t)

		s.Process(squatFrame(95, 160))            // 100
		s.Process(hidden(squatFrame(130, 120)))   // excluded
		result := s.Finish()

		require.Equal(t, 100, result.OverallScore)
		require.Equal(t, 2, result.FrameCount)
		require.Equal(t, 1, result.EvaluatedFrames)
	})

	t.Run("a rep stalls through dropout and resumes", func(t *testing.T) {
		s := newSquatSession(t)

		// Descend to the bottom, lose the trainee, then finish the rep.
		for _, knee := range []float64{170, 130, 105} {
			s.Process(squatFrame(knee, 170))
		}
		for i := 0; i < 5; i++ {
			res := s.Process(hidden(squatFrame(105, 170)))
			require.Equal(t, "bottom", res.Phase)
		}
		for _, knee := range []float64{115, 140, 165} {
			s.Process(squatFrame(knee, 170))
		}

		require.Equal(t, 1, s.RepCount())
	})

	t.Run("all frames invisible yields the zero sentinel", func(t *testing.T) {
		s := newSquatSession(t)
		for i := 0; i < 4; i++ {
			s.Process(hidden(squatFrame(95, 160)))
		}
		result := s.Finish()
		require.Equal(t, 0, result.OverallScore)
		require.Equal(t, 0, result.EvaluatedFrames)
		require.Equal(t, 4, result.FrameCount)
		require.Equal(t, 0, result.RepCount)
	})
}

func TestSession_AdvisoriesAreDistinct(t *testing.T) {
	s := newSquatSession(t)

	bad := s.Process(squatFrame(130, 120))
	require.True(t, bad.Evaluated)
	require.NotEmpty(t, bad.Feedback)
	require.NotContains(t, bad.Feedback, feedback.VisibilityAdvisory)

	gated := s.Process(hidden(squatFrame(130, 120)))
	require.Equal(t, []string{feedback.VisibilityAdvisory}, gated.Feedback)
}

func TestSession_DeterministicReplay(t *testing.T) {
	frames := make([]*pose.Frame, 0, len(repSweep)*3)
	for i := 0; i < 3; i++ {
		for _, knee := range repSweep {
			frames = append(frames, squatFrame(knee, 165))
		}
	}

	a := newSquatSession(t)
	b := newSquatSession(t)
	for _, f := range frames {
		ra := a.Process(f)
		rb := b.Process(f)
		require.Equal(t, ra, rb)
	}
	require.Equal(t, a.Finish(), b.Finish())
}

func TestSession_FinishIsIdempotent(t *testing.T) {
	s := newSquatSession(t)
	for _, knee := range repSweep {
		s.Process(squatFrame(knee, 170))
	}
	require.Equal(t, s.Finish(), s.Finish())
}

func TestSession_DigestPopulatedForLongSessions(t *testing.T) {
	s := newSquatSession(t)
	for i := 0; i < 12; i++ {
		s.Process(squatFrame(95, 160))
	}
	result := s.Finish()

	require.Equal(t, 100.0, result.Digest.MinScore)
	require.Equal(t, 100.0, result.Digest.MaxScore)
	require.Equal(t, 0.0, result.Digest.StdDev)
	require.NotNil(t, result.Digest.BootstrapCI)
	require.InDelta(t, 100.0, result.Digest.BootstrapCI.Mean, 1e-9)
}
