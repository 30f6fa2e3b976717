package exercises

import (
	"math"
	"testing"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"
	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// indexCriteria maps criteria results by name for assertion convenience.
func indexCriteria(t *testing.T, criteria []models.CriterionResult) map[string]models.CriterionResult {
	t.Helper()
	byName := make(map[string]models.CriterionResult, len(criteria))
	for _, c := range criteria {
		if _, dup := byName[c.Name]; dup {
			t.Fatalf("duplicate criterion name %q", c.Name)
		}
		byName[c.Name] = c
	}
	return byName
}

// fullyVisible returns a frame with every landmark at full confidence.
func fullyVisible() *pose.Frame {
	f := &pose.Frame{}
	for i := range f.Landmarks {
		f.Landmarks[i].Visibility = 1
	}
	return f
}

func put(f *pose.Frame, i pose.Index, x, y float64) {
	f.Landmarks[i].X = x
	f.Landmarks[i].Y = y
	f.Landmarks[i].Visibility = 1
}

// ray places `to` at `from` plus length units in the given direction.
// Directions are degrees: 0 is +X (right), 90 is +Y (down).
func ray(f *pose.Frame, from, to pose.Index, deg, length float64) {
	lm := f.Landmarks[from]
	rad := deg * math.Pi / 180
	put(f, to, lm.X+length*math.Cos(rad), lm.Y+length*math.Sin(rad))
}

// dirDeg returns the direction from one landmark to another in degrees.
func dirDeg(f *pose.Frame, from, to pose.Index) float64 {
	a := f.Landmarks[from]
	b := f.Landmarks[to]
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// squatFrame builds a symmetric squat pose with exact knee and torso angles.
func squatFrame(kneeDeg, torsoDeg float64) *pose.Frame {
	f := fullyVisible()
	sides := []struct{ hip, knee, ankle, foot, shoulder pose.Index }{
		{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle, pose.LeftFootIndex, pose.LeftShoulder},
		{pose.RightHip, pose.RightKnee, pose.RightAnkle, pose.RightFootIndex, pose.RightShoulder},
	}
	for _, s := range sides {
		put(f, s.knee, 0.5, 0.5)
		ray(f, s.knee, s.ankle, 90, 0.4)       // shin straight down
		ray(f, s.knee, s.hip, 90-kneeDeg, 0.4) // thigh bent to the knee angle
		put(f, s.foot, f.Landmarks[s.ankle].X+0.02, f.Landmarks[s.ankle].Y+0.02)
		ray(f, s.hip, s.shoulder, dirDeg(f, s.hip, s.knee)+torsoDeg, 0.5)
	}
	return f
}

// pushUpFrame builds a plank pose with exact elbow and body-line angles.
func pushUpFrame(elbowDeg, bodyDeg float64) *pose.Frame {
	f := fullyVisible()
	sides := []struct{ shoulder, elbow, wrist, hip, ankle pose.Index }{
		{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist, pose.LeftHip, pose.LeftAnkle},
		{pose.RightShoulder, pose.RightElbow, pose.RightWrist, pose.RightHip, pose.RightAnkle},
	}
	for _, s := range sides {
		put(f, s.shoulder, 0.3, 0.5)
		ray(f, s.shoulder, s.elbow, 90, 0.15)
		ray(f, s.elbow, s.wrist, dirDeg(f, s.elbow, s.shoulder)+elbowDeg, 0.2)
		put(f, s.hip, 0.65, 0.5)
		ray(f, s.hip, s.ankle, dirDeg(f, s.hip, s.shoulder)-bodyDeg, 0.35)
	}
	return f
}

// curlFrame builds a standing curl pose with an exact elbow angle and a given
// horizontal elbow drift from the shoulder-hip midpoint.
func curlFrame(elbowDeg, drift float64) *pose.Frame {
	f := fullyVisible()
	sides := []struct{ shoulder, elbow, wrist, hip pose.Index }{
		{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist, pose.LeftHip},
		{pose.RightShoulder, pose.RightElbow, pose.RightWrist, pose.RightHip},
	}
	for _, s := range sides {
		put(f, s.shoulder, 0.5, 0.3)
		put(f, s.hip, 0.5, 0.6)
		put(f, s.elbow, 0.5+drift, 0.45)
		ray(f, s.elbow, s.wrist, dirDeg(f, s.elbow, s.shoulder)+elbowDeg, 0.25)
	}
	return f
}

// raiseFrame builds a lateral raise pose with both arms lifted armDeg away
// from hanging straight down.
func raiseFrame(armDeg float64) *pose.Frame {
	f := fullyVisible()
	put(f, pose.LeftShoulder, 0.35, 0.4)
	put(f, pose.RightShoulder, 0.65, 0.4)
	put(f, pose.LeftHip, 0.4, 0.7)
	put(f, pose.RightHip, 0.6, 0.7)
	ray(f, pose.LeftShoulder, pose.LeftElbow, 90+armDeg, 0.15)
	ray(f, pose.LeftShoulder, pose.LeftWrist, 90+armDeg, 0.3)
	ray(f, pose.RightShoulder, pose.RightElbow, 90-armDeg, 0.15)
	ray(f, pose.RightShoulder, pose.RightWrist, 90-armDeg, 0.3)
	return f
}

// pressFrame builds an overhead press pose with the upper arms vertical and
// an exact elbow angle.
func pressFrame(elbowDeg float64) *pose.Frame {
	f := fullyVisible()
	put(f, pose.Nose, 0.5, 0.2)
	sides := []struct{ shoulder, elbow, wrist pose.Index }{
		{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
		{pose.RightShoulder, pose.RightElbow, pose.RightWrist},
	}
	xs := []float64{0.4, 0.6}
	for i, s := range sides {
		put(f, s.shoulder, xs[i], 0.35)
		ray(f, s.shoulder, s.elbow, -90, 0.15)
		ray(f, s.elbow, s.wrist, dirDeg(f, s.elbow, s.shoulder)+elbowDeg, 0.25)
	}
	return f
}
