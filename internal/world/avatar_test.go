package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var testController = Controller{Speed: 6, RotationSpeed: 2, Bounds: 25}

func TestStepForwardFollowsYaw(t *testing.T) {
	var in InputState
	in.Press(ActionForward)

	a := testController.Step(Avatar{}, &in, 0.5, ModeExploring)
	if !approx(a.Position[2], 3) || !approx(a.Position[0], 0) || a.Position[1] != 0 {
		t.Fatalf("yaw 0: position = %v; want (0,0,3)", a.Position)
	}

	a = testController.Step(Avatar{Yaw: math.Pi / 2}, &in, 0.5, ModeExploring)
	if !approx(a.Position[0], 3) || !approx(a.Position[2], 0) {
		t.Fatalf("yaw pi/2: position = %v; want (3,0,0)", a.Position)
	}

	in.Release(ActionForward)
	in.Press(ActionBackward)
	a = testController.Step(Avatar{}, &in, 0.5, ModeExploring)
	if !approx(a.Position[2], -3) {
		t.Fatalf("backward: position = %v; want (0,0,-3)", a.Position)
	}
}

func TestStepRotation(t *testing.T) {
	var in InputState
	in.Press(ActionTurnLeft)
	a := testController.Step(Avatar{}, &in, 0.25, ModeExploring)
	if !approx(a.Yaw, 0.5) {
		t.Fatalf("turn left yaw = %v; want 0.5", a.Yaw)
	}
	in.Release(ActionTurnLeft)
	in.Press(ActionTurnRight)
	a = testController.Step(a, &in, 0.5, ModeExploring)
	if !approx(a.Yaw, -0.5) {
		t.Fatalf("turn right yaw = %v; want -0.5", a.Yaw)
	}
}

func TestStepOppositeHoldsCancel(t *testing.T) {
	var in InputState
	for _, act := range Actions()[:4] {
		in.Press(act)
	}
	start := Avatar{Position: mgl32.Vec3{1, 0, 2}, Yaw: 0.3}
	a := testController.Step(start, &in, 0.1, ModeExploring)
	if !approx(a.Yaw, start.Yaw) || a.Position.Sub(start.Position).Len() > 1e-4 {
		t.Fatalf("opposite holds moved the avatar: %+v", a)
	}
}

func TestStepClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	moves := Actions()[:4]
	a := Avatar{Position: mgl32.Vec3{0, 0, 8}}
	var in InputState
	for i := 0; i < 5000; i++ {
		for _, act := range moves {
			in.Set(act, rng.Intn(2) == 0)
		}
		dt := rng.Float32() * 0.5
		a = testController.Step(a, &in, dt, ModeExploring)
		if a.Position[0] < -25 || a.Position[0] > 25 || a.Position[2] < -25 || a.Position[2] > 25 {
			t.Fatalf("step %d: position %v escaped the play area", i, a.Position)
		}
	}
}

func TestStepClampsEachAxis(t *testing.T) {
	var in InputState
	in.Press(ActionForward)
	a := testController.Step(Avatar{Position: mgl32.Vec3{24, 0, 24}, Yaw: math.Pi / 4}, &in, 10, ModeExploring)
	if a.Position[0] != 25 || a.Position[2] != 25 {
		t.Fatalf("position = %v; want (25,0,25)", a.Position)
	}
}

func TestStepSuspendedWhilePanelOpen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	start := Avatar{Position: mgl32.Vec3{3, 0, -4}, Yaw: 1.2}
	a := start
	var in InputState
	for i := 0; i < 200; i++ {
		for _, act := range Actions()[:4] {
			in.Set(act, rng.Intn(2) == 0)
		}
		a = testController.Step(a, &in, rng.Float32(), ModePanelOpen)
	}
	if a != start {
		t.Fatalf("avatar moved while panel open: %+v; want %+v", a, start)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	var in InputState
	in.Press(ActionForward)
	in.Press(ActionTurnLeft)
	start := Avatar{Position: mgl32.Vec3{1, 0, 1}, Yaw: 0.7}
	a := testController.Step(start, &in, 0.016, ModeExploring)
	b := testController.Step(start, &in, 0.016, ModeExploring)
	if a != b {
		t.Fatalf("same inputs gave %+v and %+v", a, b)
	}
}
