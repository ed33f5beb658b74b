package envelope

import (
	"math"
	"testing"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

func mustResolve(t *testing.T, code string) zoning.Regulations {
	t.Helper()
	regs, err := zoning.NewRepository().Resolve(zoning.Parse(code))
	if err != nil {
		t.Fatalf("resolve %s: %v", code, err)
	}
	return regs
}

func TestCalculateSetbacksSymmetric(t *testing.T) {
	regs := mustResolve(t, "RL2")
	s := CalculateSetbacks(regs, false, false)

	if s.FrontYard != 9.0 || s.RearYard != 7.5 {
		t.Errorf("front/rear = %v/%v, want 9.0/7.5", s.FrontYard, s.RearYard)
	}
	if s.InteriorSideLeft != 2.4 || s.InteriorSideRight != 2.4 {
		t.Errorf("sides = %v/%v, want 2.4/2.4", s.InteriorSideLeft, s.InteriorSideRight)
	}
	if s.FlankageYard != 0 {
		t.Errorf("interior lot should have no flankage yard, got %v", s.FlankageYard)
	}
}

func TestCalculateSetbacksAsymmetric(t *testing.T) {
	regs := mustResolve(t, "RL3")
	s := CalculateSetbacks(regs, false, false)

	// Stricter minimum lands on the left, the permitted reduced side on
	// the right.
	if s.InteriorSideLeft != 2.4 {
		t.Errorf("left = %v, want 2.4", s.InteriorSideLeft)
	}
	if s.InteriorSideRight != 1.2 {
		t.Errorf("right = %v, want 1.2", s.InteriorSideRight)
	}
	if s.TotalSideSetback() != 3.6 {
		t.Errorf("total = %v, want 3.6", s.TotalSideSetback())
	}
}

func TestCalculateSetbacksGarageOneSide(t *testing.T) {
	regs := mustResolve(t, "RL2")
	s := CalculateSetbacks(regs, false, true)

	if s.InteriorSideRight != 1.2 {
		t.Errorf("garage side = %v, want 1.2", s.InteriorSideRight)
	}
	if s.InteriorSideLeft != 2.4 {
		t.Errorf("non-garage side = %v, want unchanged 2.4", s.InteriorSideLeft)
	}
}

func TestCalculateSetbacksGarageBothSides(t *testing.T) {
	regs := mustResolve(t, "RL4")
	s := CalculateSetbacks(regs, false, true)

	if s.InteriorSideLeft != 1.2 || s.InteriorSideRight != 1.2 {
		t.Errorf("sides = %v/%v, want 1.2/1.2", s.InteriorSideLeft, s.InteriorSideRight)
	}
}

func TestCalculateSetbacksCornerCoupled(t *testing.T) {
	regs := mustResolve(t, "RL2")
	s := CalculateSetbacks(regs, true, false)

	// Rear reduction and the 3.0 m interior-side floor arrive together.
	if s.RearYard != 3.5 {
		t.Errorf("rear = %v, want reduced 3.5", s.RearYard)
	}
	if s.InteriorSideLeft < 3.0 {
		t.Errorf("left = %v, want >= 3.0", s.InteriorSideLeft)
	}
	if s.FlankageYard != 3.5 {
		t.Errorf("flankage = %v, want 3.5", s.FlankageYard)
	}
}

func TestCalculateSetbacksCornerWithGarage(t *testing.T) {
	regs := mustResolve(t, "RL2")
	s := CalculateSetbacks(regs, true, true)

	// Garage reduction and corner interior-side floor coexist on opposite
	// sides.
	if s.InteriorSideRight != 1.2 {
		t.Errorf("garage side = %v, want 1.2", s.InteriorSideRight)
	}
	if s.InteriorSideLeft < 3.0 {
		t.Errorf("left = %v, want >= 3.0", s.InteriorSideLeft)
	}
	if s.RearYard != 3.5 {
		t.Errorf("rear = %v, want 3.5", s.RearYard)
	}
}

func TestBuildableArea(t *testing.T) {
	s := Setbacks{FrontYard: 9.0, RearYard: 7.5, InteriorSideLeft: 2.4, InteriorSideRight: 2.4}

	// 25 m frontage, 36 m deep: (25-4.8) x (36-16.5)
	got := BuildableArea(25, 36, s)
	want := 20.2 * 19.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BuildableArea = %v, want %v", got, want)
	}
}

func TestBuildableAreaClampsToZero(t *testing.T) {
	s := Setbacks{FrontYard: 9.0, RearYard: 7.5, InteriorSideLeft: 2.4, InteriorSideRight: 2.4}

	if got := BuildableArea(4, 36, s); got != 0 {
		t.Errorf("narrow lot area = %v, want 0", got)
	}
	if got := BuildableArea(25, 10, s); got != 0 {
		t.Errorf("shallow lot area = %v, want 0", got)
	}
}
