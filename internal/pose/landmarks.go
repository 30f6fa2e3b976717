// Package pose defines the landmark frame model produced by the external pose
// detector and the visibility filtering that gates scoring. The engine never
// mutates landmark data; frames are treated as immutable snapshots.
package pose

import (
	"errors"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/geometry"
)

// Index identifies one of the 33 tracked body points. The enumeration follows
// the BlazePose full-body convention and is closed: detectors always emit one
// slot per index, possibly at low visibility.
type Index int

const (
	Nose Index = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex

	// NumLandmarks is the fixed slot count of every frame.
	NumLandmarks = 33
)

// ErrInvalidFrame reports a frame that violates the 33-landmark contract.
// This is a caller/programmer error, not a runtime condition: the in-process
// API is immune by construction (fixed-size array), so it only surfaces at
// decoding boundaries.
var ErrInvalidFrame = errors.New("pose: frame must contain exactly 33 landmarks")

// Landmark is a single tracked body point. Coordinates are normalized image
// coordinates (X rightward, Y downward, Z away from the camera); Visibility is
// the detector's confidence in [0,1].
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"v"`
}

// Frame is one sampled instant's full landmark set plus its capture timestamp
// in milliseconds. Some slots may carry low visibility; none are ever absent.
type Frame struct {
	TimestampMS int64                   `json:"t"`
	Landmarks   [NumLandmarks]Landmark `json:"landmarks"`
}

// Point returns the position of landmark i as a geometry point.
func (f *Frame) Point(i Index) geometry.Point {
	lm := f.Landmarks[i]
	return geometry.Point{X: lm.X, Y: lm.Y, Z: lm.Z}
}
