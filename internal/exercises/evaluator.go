// Package exercises defines the per-exercise form evaluators. Each evaluator
// contributes three things: the joints it needs visible, a fixed list of named
// geometric checks, and the phase machine spec that drives rep counting. All
// evaluators are stateless; per-session state lives in the engine.
package exercises

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/phase"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// Type identifies an exercise evaluator.
type Type string

const (
	TypeSquat         Type = "squat"
	TypePushUp        Type = "pushup"
	TypeCurl          Type = "curl"
	TypeLateralRaise  Type = "lateral_raise"
	TypeShoulderPress Type = "shoulder_press"
)

// Types lists every supported exercise type.
var Types = []Type{TypeSquat, TypePushUp, TypeCurl, TypeLateralRaise, TypeShoulderPress}

// Evaluator is the capability set shared by all five exercise variants.
// Implementations are selected once at session start; they carry no mutable
// state and may be shared across sessions.
type Evaluator interface {
	// Name returns the evaluator's display name.
	Name() string

	// Type returns the exercise type tag.
	Type() Type

	// RequiredJoints lists the landmarks that must pass the scoring
	// visibility threshold before a frame may be evaluated.
	RequiredJoints() []pose.Index

	// Criteria runs the exercise's checks against the frame and returns one
	// result per check. Checks are independent and side-effect-free; their
	// order only affects feedback ordering.
	Criteria(f *pose.Frame) []models.CriterionResult

	// Phases returns the phase machine spec for this exercise.
	Phases() phase.Spec
}

// ParseType converts a string flag value to an exercise Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid exercise type %q: must be one of squat, pushup, curl, lateral_raise, shoulder_press", s)
}

// Create builds an evaluator for the given exercise type. params optionally
// overrides individual tolerance values (mapstructure keys match the
// per-exercise Params structs); a nil or empty map yields the documented
// defaults.
func Create(t Type, params map[string]any) (Evaluator, error) {
	switch t {
	case TypeSquat:
		p := DefaultSquatParams()
		if err := mapstructure.Decode(params, &p); err != nil {
			return nil, err
		}
		return NewSquat(p), nil
	case TypePushUp:
		p := DefaultPushUpParams()
		if err := mapstructure.Decode(params, &p); err != nil {
			return nil, err
		}
		return NewPushUp(p), nil
	case TypeCurl:
		p := DefaultCurlParams()
		if err := mapstructure.Decode(params, &p); err != nil {
			return nil, err
		}
		return NewCurl(p), nil
	case TypeLateralRaise:
		p := DefaultLateralRaiseParams()
		if err := mapstructure.Decode(params, &p); err != nil {
			return nil, err
		}
		return NewLateralRaise(p), nil
	case TypeShoulderPress:
		p := DefaultShoulderPressParams()
		if err := mapstructure.Decode(params, &p); err != nil {
			return nil, err
		}
		return NewShoulderPress(p), nil
	default:
		return nil, fmt.Errorf("%q is not a valid exercise type", string(t))
	}
}
