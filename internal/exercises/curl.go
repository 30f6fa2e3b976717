package exercises

import (
	"math"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/geometry"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/phase"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// Curl phase cycle, driven by the elbow angle: arm hanging ~180, fully curled
// ~40.
const (
	CurlDown     phase.Phase = "down"
	CurlLifting  phase.Phase = "lifting"
	CurlTop      phase.Phase = "top"
	CurlLowering phase.Phase = "lowering"
)

// Curl phase thresholds in degrees.
const (
	curlLiftBelow = 150.0 // Down -> Lifting
	curlTopAt     = 50.0  // Lifting -> Top, Top -> Lowering
	curlDownAbove = 160.0 // Lowering -> Down, counts the rep
)

// CurlParams holds the curl form tolerances.
type CurlParams struct {
	// ContractionMin/ContractionMax bound the top-position elbow angle in
	// degrees.
	ContractionMin float64 `mapstructure:"contraction_min"`
	ContractionMax float64 `mapstructure:"contraction_max"`
	// ElbowDriftTolerance bounds how far the elbow pivot may wander from the
	// shoulder-hip midpoint, in normalized units. The elbow should stay
	// pinned while only the forearm swings.
	ElbowDriftTolerance float64 `mapstructure:"elbow_drift_tolerance"`
}

// DefaultCurlParams returns the documented default tolerances.
func DefaultCurlParams() CurlParams {
	return CurlParams{
		ContractionMin:      30,
		ContractionMax:      50,
		ElbowDriftTolerance: 0.05,
	}
}

type curlEvaluator struct {
	params CurlParams
}

// NewCurl creates the curl evaluator with the given tolerances.
func NewCurl(params CurlParams) *curlEvaluator {
	return &curlEvaluator{params: params}
}

func (e *curlEvaluator) Name() string { return "Bicep curl" }
func (e *curlEvaluator) Type() Type   { return TypeCurl }

func (e *curlEvaluator) RequiredJoints() []pose.Index {
	return []pose.Index{
		pose.LeftShoulder, pose.RightShoulder,
		pose.LeftElbow, pose.RightElbow,
		pose.LeftWrist, pose.RightWrist,
		pose.LeftHip, pose.RightHip,
	}
}

func (e *curlEvaluator) Criteria(f *pose.Frame) []models.CriterionResult {
	return []models.CriterionResult{
		rangeCriterion("elbow_angle", curlElbowAngle(f), e.params.ContractionMin, e.params.ContractionMax,
			"Curl the weight all the way up"),
		offsetCriterion("elbow_drift", curlElbowDrift(f), e.params.ElbowDriftTolerance,
			"Keep your elbows pinned to your sides"),
	}
}

func (e *curlEvaluator) Phases() phase.Spec {
	return phase.Spec{
		Initial: CurlDown,
		Rules: []phase.Rule{
			{From: CurlDown, To: CurlLifting, When: func(f *pose.Frame) bool {
				return curlElbowAngle(f) < curlLiftBelow
			}},
			{From: CurlLifting, To: CurlTop, When: func(f *pose.Frame) bool {
				return curlElbowAngle(f) <= curlTopAt
			}},
			{From: CurlTop, To: CurlLowering, When: func(f *pose.Frame) bool {
				return curlElbowAngle(f) > curlTopAt
			}},
			{From: CurlLowering, To: CurlDown, When: func(f *pose.Frame) bool {
				return curlElbowAngle(f) >= curlDownAbove
			}, CompletesRep: true},
		},
	}
}

func curlElbowAngle(f *pose.Frame) float64 {
	return jointAngleMean(f,
		pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist,
		pose.RightShoulder, pose.RightElbow, pose.RightWrist)
}

// curlElbowDrift measures the worse of the two horizontal elbow offsets from
// the same-side shoulder-hip midpoint.
func curlElbowDrift(f *pose.Frame) float64 {
	leftMid := geometry.Midpoint(f.Point(pose.LeftShoulder), f.Point(pose.LeftHip))
	rightMid := geometry.Midpoint(f.Point(pose.RightShoulder), f.Point(pose.RightHip))
	left := math.Abs(f.Landmarks[pose.LeftElbow].X - leftMid.X)
	right := math.Abs(f.Landmarks[pose.RightElbow].X - rightMid.X)
	return maxSide(left, right)
}
