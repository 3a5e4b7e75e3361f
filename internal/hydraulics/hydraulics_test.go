package hydraulics

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeDiameter_Heuristics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want float64
	}{
		{100, 0.1},    // mm
		{4, 0.1016},   // inches
		{0.1, 0.1},    // metres
		{0.95, 0.95},  // metres, just under the inch threshold
	}
	for _, tc := range cases {
		if got := normalizeDiameter(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("normalizeDiameter(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFlowFromVelocity(t *testing.T) {
	t.Parallel()

	res, err := FlowFromVelocity(100, 2) // 100 mm pipe at 2 m/s
	if err != nil {
		t.Fatalf("FlowFromVelocity: %v", err)
	}
	wantArea := math.Pi * 0.05 * 0.05
	if math.Abs(res.PipeAreaM2-wantArea) > 1e-12 {
		t.Fatalf("area = %v, want %v", res.PipeAreaM2, wantArea)
	}
	wantFlow := wantArea * 2 * 3600
	if math.Abs(res.FlowRateM3H-wantFlow) > 1e-9 {
		t.Fatalf("flow = %v, want %v", res.FlowRateM3H, wantFlow)
	}
	if res.FlowRateGPM <= res.FlowRateM3H {
		t.Fatalf("GPM figure should exceed m3/h figure: %+v", res)
	}
}

func TestVelocityFromFlow_RoundTripsWithFlowFromVelocity(t *testing.T) {
	t.Parallel()

	fwd, err := FlowFromVelocity(0.1, 3)
	if err != nil {
		t.Fatalf("FlowFromVelocity: %v", err)
	}
	back, err := VelocityFromFlow(0.1, fwd.FlowRateM3H)
	if err != nil {
		t.Fatalf("VelocityFromFlow: %v", err)
	}
	if math.Abs(back.VelocityMS-3) > 1e-9 {
		t.Fatalf("velocity = %v, want 3", back.VelocityMS)
	}
}

func TestVelocityFromFlow_GPMHeuristic(t *testing.T) {
	t.Parallel()

	res, err := VelocityFromFlow(0.1, 440.287) // treated as GPM
	if err != nil {
		t.Fatalf("VelocityFromFlow: %v", err)
	}
	if math.Abs(res.FlowRateM3H-100.0) > 0.01 {
		t.Fatalf("440.287 GPM should be ~100 m3/h, got %v", res.FlowRateM3H)
	}
}

func TestFlow_InvalidDiameter(t *testing.T) {
	t.Parallel()

	if _, err := FlowFromVelocity(0, 1); !errors.Is(err, ErrInvalidDiameter) {
		t.Fatalf("got %v, want ErrInvalidDiameter", err)
	}
	if _, err := VelocityFromFlow(-1, 10); !errors.Is(err, ErrInvalidDiameter) {
		t.Fatalf("got %v, want ErrInvalidDiameter", err)
	}
}

func TestPressureDrop_TurbulentRegime(t *testing.T) {
	t.Parallel()

	res, err := PressureDrop(50, 100, 100, 0) // 50 m3/h, 100 mm, 100 m, default roughness
	if err != nil {
		t.Fatalf("PressureDrop: %v", err)
	}
	if res.ReynoldsNumber < laminarReynoldsLimit {
		t.Fatalf("expected turbulent flow, Re = %v", res.ReynoldsNumber)
	}
	if res.FrictionFactor <= 0 || res.FrictionFactor >= 1 {
		t.Fatalf("friction factor = %v out of plausible range", res.FrictionFactor)
	}
	if res.PressureDropPa <= 0 {
		t.Fatalf("pressure drop = %v", res.PressureDropPa)
	}
	if math.Abs(res.PressureDropBar-res.PressureDropPa/1e5) > 1e-12 {
		t.Fatalf("bar conversion mismatch: %+v", res)
	}
}

func TestPressureDrop_LaminarRegime(t *testing.T) {
	t.Parallel()

	// A trickle through a hand-width pipe stays laminar.
	res, err := PressureDrop(0.05, 100, 10, 0)
	if err != nil {
		t.Fatalf("PressureDrop: %v", err)
	}
	if res.ReynoldsNumber >= laminarReynoldsLimit {
		t.Fatalf("expected laminar flow, Re = %v", res.ReynoldsNumber)
	}
	want := 64 / res.ReynoldsNumber
	if math.Abs(res.FrictionFactor-want) > 1e-12 {
		t.Fatalf("laminar friction = %v, want 64/Re = %v", res.FrictionFactor, want)
	}
}

func TestPressureDrop_MonotonicInLength(t *testing.T) {
	t.Parallel()

	short, err := PressureDrop(50, 100, 10, 0)
	if err != nil {
		t.Fatalf("short: %v", err)
	}
	long, err := PressureDrop(50, 100, 200, 0)
	if err != nil {
		t.Fatalf("long: %v", err)
	}
	if long.PressureDropPa <= short.PressureDropPa {
		t.Fatalf("longer pipe must drop more pressure: %v <= %v", long.PressureDropPa, short.PressureDropPa)
	}
}

func TestPressureDrop_InvalidInputs(t *testing.T) {
	t.Parallel()

	if _, err := PressureDrop(50, 0, 10, 0); !errors.Is(err, ErrInvalidDiameter) {
		t.Fatalf("got %v, want ErrInvalidDiameter", err)
	}
	if _, err := PressureDrop(50, 100, 0, 0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}
