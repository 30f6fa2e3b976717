package exercises

import (
	"math"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/phase"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// Squat phase cycle. The knee angle (hip-knee-ankle, averaged over both legs)
// drives every transition: 180 standing tall, ~100 at the bottom.
const (
	SquatStanding   phase.Phase = "standing"
	SquatDescending phase.Phase = "descending"
	SquatBottom     phase.Phase = "bottom"
	SquatAscending  phase.Phase = "ascending"
)

// Squat phase thresholds in degrees.
const (
	squatDescendBelow  = 140.0 // Standing -> Descending
	squatBottomAt      = 110.0 // Descending -> Bottom, Bottom -> Ascending
	squatStandingAbove = 160.0 // Ascending -> Standing, counts the rep
)

// SquatParams holds the squat form tolerances. The defaults are the
// empirically chosen domain constants; overriding them changes scoring only,
// never the phase thresholds.
type SquatParams struct {
	// DepthMin/DepthMax bound the knee angle for a well-formed bottom
	// position, in degrees.
	DepthMin float64 `mapstructure:"depth_min"`
	DepthMax float64 `mapstructure:"depth_max"`
	// KneeForwardTolerance bounds how far a knee may travel past the toes,
	// in normalized units.
	KneeForwardTolerance float64 `mapstructure:"knee_forward_tolerance"`
	// TorsoMin is the minimum shoulder-hip-knee angle, in degrees; smaller
	// values mean a rounded or collapsed back.
	TorsoMin float64 `mapstructure:"torso_min"`
}

// DefaultSquatParams returns the documented default tolerances.
func DefaultSquatParams() SquatParams {
	return SquatParams{
		DepthMin:             90,
		DepthMax:             110,
		KneeForwardTolerance: 0.05,
		TorsoMin:             150,
	}
}

type squatEvaluator struct {
	params SquatParams
}

// NewSquat creates the squat evaluator with the given tolerances.
func NewSquat(params SquatParams) *squatEvaluator {
	return &squatEvaluator{params: params}
}

func (e *squatEvaluator) Name() string { return "Squat" }
func (e *squatEvaluator) Type() Type   { return TypeSquat }

func (e *squatEvaluator) RequiredJoints() []pose.Index {
	return []pose.Index{
		pose.LeftShoulder, pose.RightShoulder,
		pose.LeftHip, pose.RightHip,
		pose.LeftKnee, pose.RightKnee,
		pose.LeftAnkle, pose.RightAnkle,
		pose.LeftFootIndex, pose.RightFootIndex,
	}
}

func (e *squatEvaluator) Criteria(f *pose.Frame) []models.CriterionResult {
	return []models.CriterionResult{
		rangeCriterion("knee_angle", squatKneeAngle(f), e.params.DepthMin, e.params.DepthMax,
			"Squat deeper until your thighs are parallel"),
		offsetCriterion("knee_forward", squatKneeForward(f), e.params.KneeForwardTolerance,
			"Keep your knees behind your toes"),
		minCriterion("torso_angle", squatTorsoAngle(f), e.params.TorsoMin, 30,
			"Keep your chest up and back straight"),
	}
}

func (e *squatEvaluator) Phases() phase.Spec {
	return phase.Spec{
		Initial: SquatStanding,
		Rules: []phase.Rule{
			{From: SquatStanding, To: SquatDescending, When: func(f *pose.Frame) bool {
				return squatKneeAngle(f) < squatDescendBelow
			}},
			{From: SquatDescending, To: SquatBottom, When: func(f *pose.Frame) bool {
				return squatKneeAngle(f) <= squatBottomAt
			}},
			{From: SquatBottom, To: SquatAscending, When: func(f *pose.Frame) bool {
				return squatKneeAngle(f) > squatBottomAt
			}},
			{From: SquatAscending, To: SquatStanding, When: func(f *pose.Frame) bool {
				return squatKneeAngle(f) >= squatStandingAbove
			}, CompletesRep: true},
		},
	}
}

func squatKneeAngle(f *pose.Frame) float64 {
	return jointAngleMean(f,
		pose.LeftHip, pose.LeftKnee, pose.LeftAnkle,
		pose.RightHip, pose.RightKnee, pose.RightAnkle)
}

func squatTorsoAngle(f *pose.Frame) float64 {
	return jointAngleMean(f,
		pose.LeftShoulder, pose.LeftHip, pose.LeftKnee,
		pose.RightShoulder, pose.RightHip, pose.RightKnee)
}

// squatKneeForward measures the worse of the two knee-over-toe horizontal
// offsets, in normalized units.
func squatKneeForward(f *pose.Frame) float64 {
	left := math.Abs(f.Landmarks[pose.LeftKnee].X - f.Landmarks[pose.LeftFootIndex].X)
	right := math.Abs(f.Landmarks[pose.RightKnee].X - f.Landmarks[pose.RightFootIndex].X)
	return maxSide(left, right)
}
