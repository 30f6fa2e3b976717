package exercises

import (
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/phase"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// Push-up phase cycle, driven by the elbow angle (shoulder-elbow-wrist,
// averaged over both arms): ~180 at the top of the plank, ~90 at the bottom.
const (
	PushUpUp       phase.Phase = "up"
	PushUpLowering phase.Phase = "lowering"
	PushUpBottom   phase.Phase = "bottom"
	PushUpPressing phase.Phase = "pressing"
)

// Push-up phase thresholds in degrees.
const (
	pushUpLowerBelow = 140.0 // Up -> Lowering
	pushUpBottomAt   = 100.0 // Lowering -> Bottom, Bottom -> Pressing
	pushUpTopAbove   = 160.0 // Pressing -> Up, counts the rep
)

// PushUpParams holds the push-up form tolerances.
type PushUpParams struct {
	// ElbowMin/ElbowMax bound the bottom-position elbow angle in degrees.
	ElbowMin float64 `mapstructure:"elbow_min"`
	ElbowMax float64 `mapstructure:"elbow_max"`
	// BodyLineMin is the minimum shoulder-hip-ankle angle in degrees; a
	// sagging or piked hip drops below it.
	BodyLineMin float64 `mapstructure:"body_line_min"`
}

// DefaultPushUpParams returns the documented default tolerances.
func DefaultPushUpParams() PushUpParams {
	return PushUpParams{
		ElbowMin:    80,
		ElbowMax:    100,
		BodyLineMin: 170,
	}
}

type pushUpEvaluator struct {
	params PushUpParams
}

// NewPushUp creates the push-up evaluator with the given tolerances.
func NewPushUp(params PushUpParams) *pushUpEvaluator {
	return &pushUpEvaluator{params: params}
}

func (e *pushUpEvaluator) Name() string { return "Push-up" }
func (e *pushUpEvaluator) Type() Type   { return TypePushUp }

func (e *pushUpEvaluator) RequiredJoints() []pose.Index {
	return []pose.Index{
		pose.LeftShoulder, pose.RightShoulder,
		pose.LeftElbow, pose.RightElbow,
		pose.LeftWrist, pose.RightWrist,
		pose.LeftHip, pose.RightHip,
		pose.LeftAnkle, pose.RightAnkle,
	}
}

func (e *pushUpEvaluator) Criteria(f *pose.Frame) []models.CriterionResult {
	return []models.CriterionResult{
		rangeCriterion("elbow_angle", pushUpElbowAngle(f), e.params.ElbowMin, e.params.ElbowMax,
			"Lower your chest until your elbows reach 90 degrees"),
		minCriterion("body_line", pushUpBodyLine(f), e.params.BodyLineMin, 20,
			"Keep your body in a straight line"),
	}
}

func (e *pushUpEvaluator) Phases() phase.Spec {
	return phase.Spec{
		Initial: PushUpUp,
		Rules: []phase.Rule{
			{From: PushUpUp, To: PushUpLowering, When: func(f *pose.Frame) bool {
				return pushUpElbowAngle(f) < pushUpLowerBelow
			}},
			{From: PushUpLowering, To: PushUpBottom, When: func(f *pose.Frame) bool {
				return pushUpElbowAngle(f) <= pushUpBottomAt
			}},
			{From: PushUpBottom, To: PushUpPressing, When: func(f *pose.Frame) bool {
				return pushUpElbowAngle(f) > pushUpBottomAt
			}},
			{From: PushUpPressing, To: PushUpUp, When: func(f *pose.Frame) bool {
				return pushUpElbowAngle(f) >= pushUpTopAbove
			}, CompletesRep: true},
		},
	}
}

func pushUpElbowAngle(f *pose.Frame) float64 {
	return jointAngleMean(f,
		pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist,
		pose.RightShoulder, pose.RightElbow, pose.RightWrist)
}

func pushUpBodyLine(f *pose.Frame) float64 {
	return jointAngleMean(f,
		pose.LeftShoulder, pose.LeftHip, pose.LeftAnkle,
		pose.RightShoulder, pose.RightHip, pose.RightAnkle)
}
