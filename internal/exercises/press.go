package exercises

import (
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/phase"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// Shoulder press phase cycle, driven by the elbow angle: ~90 with the weight
// racked at the shoulders, ~175 at lockout overhead.
const (
	PressRack     phase.Phase = "rack"
	PressPressing phase.Phase = "pressing"
	PressLockout  phase.Phase = "lockout"
	PressLowering phase.Phase = "lowering"
)

// Shoulder press phase thresholds in degrees.
const (
	pressStartAbove  = 100.0 // Rack -> Pressing
	pressLockoutAt   = 160.0 // Pressing -> Lockout, Lockout -> Lowering
	pressRackedBelow = 100.0 // Lowering -> Rack, counts the rep
)

// ShoulderPressParams holds the shoulder press form tolerances.
type ShoulderPressParams struct {
	// LockoutMin/LockoutMax bound the overhead elbow angle in degrees; a
	// full lockout approaches 180.
	LockoutMin float64 `mapstructure:"lockout_min"`
	LockoutMax float64 `mapstructure:"lockout_max"`
	// ClearanceFalloff is the normalized height band over which the
	// wrists-above-head score decays once the wrists sit below the head.
	ClearanceFalloff float64 `mapstructure:"clearance_falloff"`
}

// DefaultShoulderPressParams returns the documented default tolerances.
func DefaultShoulderPressParams() ShoulderPressParams {
	return ShoulderPressParams{
		LockoutMin:       160,
		LockoutMax:       180,
		ClearanceFalloff: 0.10,
	}
}

type shoulderPressEvaluator struct {
	params ShoulderPressParams
}

// NewShoulderPress creates the shoulder press evaluator with the given
// tolerances.
func NewShoulderPress(params ShoulderPressParams) *shoulderPressEvaluator {
	return &shoulderPressEvaluator{params: params}
}

func (e *shoulderPressEvaluator) Name() string { return "Shoulder press" }
func (e *shoulderPressEvaluator) Type() Type   { return TypeShoulderPress }

func (e *shoulderPressEvaluator) RequiredJoints() []pose.Index {
	return []pose.Index{
		pose.Nose,
		pose.LeftShoulder, pose.RightShoulder,
		pose.LeftElbow, pose.RightElbow,
		pose.LeftWrist, pose.RightWrist,
	}
}

func (e *shoulderPressEvaluator) Criteria(f *pose.Frame) []models.CriterionResult {
	return []models.CriterionResult{
		rangeCriterion("lockout_angle", pressElbowAngle(f), e.params.LockoutMin, e.params.LockoutMax,
			"Press all the way up until your arms are straight"),
		// Clearance is positive when both wrists sit above the head (Y grows
		// downward); the score decays over the falloff band below zero.
		minCriterion("wrist_height", pressWristClearance(f), 0, e.params.ClearanceFalloff,
			"Press the weight above your head"),
	}
}

func (e *shoulderPressEvaluator) Phases() phase.Spec {
	return phase.Spec{
		Initial: PressRack,
		Rules: []phase.Rule{
			{From: PressRack, To: PressPressing, When: func(f *pose.Frame) bool {
				return pressElbowAngle(f) > pressStartAbove
			}},
			{From: PressPressing, To: PressLockout, When: func(f *pose.Frame) bool {
				return pressElbowAngle(f) >= pressLockoutAt
			}},
			{From: PressLockout, To: PressLowering, When: func(f *pose.Frame) bool {
				return pressElbowAngle(f) < pressLockoutAt
			}},
			{From: PressLowering, To: PressRack, When: func(f *pose.Frame) bool {
				return pressElbowAngle(f) <= pressRackedBelow
			}, CompletesRep: true},
		},
	}
}

func pressElbowAngle(f *pose.Frame) float64 {
	return jointAngleMean(f,
		pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist,
		pose.RightShoulder, pose.RightElbow, pose.RightWrist)
}

// pressWristClearance measures how far the lower of the two wrists sits above
// the head reference point. Positive means above.
func pressWristClearance(f *pose.Frame) float64 {
	head := f.Landmarks[pose.Nose].Y
	left := head - f.Landmarks[pose.LeftWrist].Y
	right := head - f.Landmarks[pose.RightWrist].Y
	if left < right {
		return left
	}
	return right
}
