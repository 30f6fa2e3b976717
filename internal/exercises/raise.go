package exercises

import (
	"math"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/phase"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// Lateral raise phase cycle, driven by the shoulder abduction angle
// (hip-shoulder-wrist, averaged over both arms): ~10 with arms hanging, ~90
// at shoulder height.
const (
	RaiseDown     phase.Phase = "down"
	RaiseRaising  phase.Phase = "raising"
	RaiseTop      phase.Phase = "top"
	RaiseLowering phase.Phase = "lowering"
)

// Lateral raise phase thresholds in degrees.
const (
	raiseLiftAbove = 30.0 // Down -> Raising
	raiseTopAt     = 80.0 // Raising -> Top, Top -> Lowering
	raiseDownBelow = 20.0 // Lowering -> Down, counts the rep
)

// LateralRaiseParams holds the lateral raise form tolerances.
type LateralRaiseParams struct {
	// ElevationTolerance bounds the wrist-to-shoulder height offset at the
	// top of the movement, in normalized units.
	ElevationTolerance float64 `mapstructure:"elevation_tolerance"`
	// SymmetryTolerance bounds the height difference between the two wrists,
	// in normalized units.
	SymmetryTolerance float64 `mapstructure:"symmetry_tolerance"`
}

// DefaultLateralRaiseParams returns the documented default tolerances.
func DefaultLateralRaiseParams() LateralRaiseParams {
	return LateralRaiseParams{
		ElevationTolerance: 0.05,
		SymmetryTolerance:  0.10,
	}
}

type lateralRaiseEvaluator struct {
	params LateralRaiseParams
}

// NewLateralRaise creates the lateral raise evaluator with the given
// tolerances.
func NewLateralRaise(params LateralRaiseParams) *lateralRaiseEvaluator {
	return &lateralRaiseEvaluator{params: params}
}

func (e *lateralRaiseEvaluator) Name() string { return "Lateral raise" }
func (e *lateralRaiseEvaluator) Type() Type   { return TypeLateralRaise }

func (e *lateralRaiseEvaluator) RequiredJoints() []pose.Index {
	return []pose.Index{
		pose.LeftShoulder, pose.RightShoulder,
		pose.LeftWrist, pose.RightWrist,
		pose.LeftHip, pose.RightHip,
	}
}

func (e *lateralRaiseEvaluator) Criteria(f *pose.Frame) []models.CriterionResult {
	return []models.CriterionResult{
		offsetCriterion("elevation", raiseElevationOffset(f), e.params.ElevationTolerance,
			"Raise your arms to shoulder height"),
		offsetCriterion("symmetry", raiseSymmetryOffset(f), e.params.SymmetryTolerance,
			"Raise both arms evenly"),
	}
}

func (e *lateralRaiseEvaluator) Phases() phase.Spec {
	return phase.Spec{
		Initial: RaiseDown,
		Rules: []phase.Rule{
			{From: RaiseDown, To: RaiseRaising, When: func(f *pose.Frame) bool {
				return raiseAbductionAngle(f) > raiseLiftAbove
			}},
			{From: RaiseRaising, To: RaiseTop, When: func(f *pose.Frame) bool {
				return raiseAbductionAngle(f) >= raiseTopAt
			}},
			{From: RaiseTop, To: RaiseLowering, When: func(f *pose.Frame) bool {
				return raiseAbductionAngle(f) < raiseTopAt
			}},
			{From: RaiseLowering, To: RaiseDown, When: func(f *pose.Frame) bool {
				return raiseAbductionAngle(f) <= raiseDownBelow
			}, CompletesRep: true},
		},
	}
}

func raiseAbductionAngle(f *pose.Frame) float64 {
	return jointAngleMean(f,
		pose.LeftHip, pose.LeftShoulder, pose.LeftWrist,
		pose.RightHip, pose.RightShoulder, pose.RightWrist)
}

// raiseElevationOffset measures the worse of the two wrist-to-shoulder height
// differences. Y grows downward, so a wrist parked at shoulder height gives 0.
func raiseElevationOffset(f *pose.Frame) float64 {
	left := math.Abs(f.Landmarks[pose.LeftWrist].Y - f.Landmarks[pose.LeftShoulder].Y)
	right := math.Abs(f.Landmarks[pose.RightWrist].Y - f.Landmarks[pose.RightShoulder].Y)
	return maxSide(left, right)
}

func raiseSymmetryOffset(f *pose.Frame) float64 {
	return math.Abs(f.Landmarks[pose.LeftWrist].Y - f.Landmarks[pose.RightWrist].Y)
}
