package layout

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSolve(t *testing.T) {
	s := Default()

	tests := []struct {
		name    string
		w, h    float64
		unit    float64
		binding Axis
		stack   float64
		spacer  float64
	}{
		{
			name: "width binds, height has 15pt slack",
			w:    500, h: 700,
			unit:    96, // (500-20)/5
			binding: AxisWidth,
			stack:   111, // 96 + (700 - (30 + 655))
			spacer:  4.5, // (500-15-476)/2
		},
		{
			name: "exact fit on both axes",
			w:    500, h: 685,
			unit:    96,
			binding: AxisWidth,
			stack:   96,
			spacer:  4.5,
		},
		{
			name: "height binds, no stack growth",
			w:    1000, h: 685,
			unit:    96, // (685-30)*96/655
			binding: AxisHeight,
			stack:   96,
			spacer:  (1000 - 15 - 476) / 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := s.Solve(tt.w, tt.h)
			if !approx(d.Unit, tt.unit) {
				t.Errorf("Unit: got %v, want %v", d.Unit, tt.unit)
			}
			if d.Binding != tt.binding {
				t.Errorf("Binding: got %v, want %v", d.Binding, tt.binding)
			}
			if !approx(d.StackHeight, tt.stack) {
				t.Errorf("StackHeight: got %v, want %v", d.StackHeight, tt.stack)
			}
			if !approx(d.SpacerWidth, tt.spacer) {
				t.Errorf("SpacerWidth: got %v, want %v", d.SpacerWidth, tt.spacer)
			}
		})
	}
}

func TestSolve_ScaleInvariant(t *testing.T) {
	s := Default()
	sizes := [][2]float64{
		{320, 480}, {375, 812}, {800, 600}, {1920, 1080}, {2560, 400}, {100, 3000},
	}
	for _, sz := range sizes {
		d := s.Solve(sz[0], sz[1])
		if !(d.Unit > 0) {
			t.Fatalf("%vx%v: Unit must be positive, got %v", sz[0], sz[1], d.Unit)
		}
		checks := []struct {
			field string
			got   float64
			want  float64
		}{
			{"ButtonHeight", d.ButtonHeight, d.Unit * 64 / 96},
			{"EntryHeight", d.EntryHeight, d.Unit * 64 / 96},
			{"StatusHeight", d.StatusHeight, d.Unit * 15 / 96},
			{"FullWidth", d.FullWidth, d.Unit*5 - 4},
			{"DisclaimerHeight", d.DisclaimerHeight, d.Unit},
		}
		for _, c := range checks {
			if !approx(c.got, c.want) {
				t.Errorf("%vx%v %s: got %v, want %v", sz[0], sz[1], c.field, c.got, c.want)
			}
		}
		if d.StackHeight < d.Unit {
			t.Errorf("%vx%v StackHeight: got %v, want >= Unit %v", sz[0], sz[1], d.StackHeight, d.Unit)
		}
	}
}

func TestSolve_BindingAxisTransition(t *testing.T) {
	s := Default()
	const w = 500.0 // unitW = 96 regardless of h
	threshold := s.TotalHeight(96)

	prev := 0.0
	for h := 300.0; h < threshold; h += 25 {
		d := s.Solve(w, h)
		if d.Binding != AxisHeight {
			t.Errorf("h=%v: Binding got %v, want height", h, d.Binding)
		}
		if d.Unit <= prev {
			t.Errorf("h=%v: Unit should grow with h while height binds, got %v after %v", h, d.Unit, prev)
		}
		prev = d.Unit
	}

	for h := threshold + 1; h < threshold+500; h += 50 {
		d := s.Solve(w, h)
		if d.Binding != AxisWidth {
			t.Errorf("h=%v: Binding got %v, want width", h, d.Binding)
		}
		if !approx(d.Unit, 96) {
			t.Errorf("h=%v: Unit got %v, want 96 (governed by w)", h, d.Unit)
		}
		if !approx(d.StackHeight, 96+(h-threshold)) {
			t.Errorf("h=%v: StackHeight got %v, want %v", h, d.StackHeight, 96+(h-threshold))
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	s := Default()
	a := s.Solve(777, 555)
	b := s.Solve(777, 555)
	if a != b {
		t.Errorf("Solve not idempotent: %+v vs %+v", a, b)
	}
}

func TestSolve_Degenerate(t *testing.T) {
	s := Default()
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero", 0, 0},
		{"negative", -100, -50},
		{"zero width", 0, 800},
		{"zero height", 800, 0},
		{"NaN", math.NaN(), 600},
		{"both NaN", math.NaN(), math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := s.Solve(tt.w, tt.h)
			fields := []float64{
				d.Unit, d.ButtonHeight, d.EntryHeight, d.StackHeight,
				d.StatusHeight, d.FullWidth, d.SpacerWidth, d.DisclaimerHeight,
			}
			for i, f := range fields {
				if math.IsNaN(f) {
					t.Errorf("field %d is NaN", i)
				}
			}
			if d.Unit != s.MinUnit {
				t.Errorf("Unit: got %v, want clamp to %v", d.Unit, s.MinUnit)
			}
			if d.StackHeight < 0 || d.SpacerWidth < 0 {
				t.Errorf("negative slack: stack=%v spacer=%v", d.StackHeight, d.SpacerWidth)
			}
		})
	}
}

func TestAxisString(t *testing.T) {
	tests := []struct {
		a    Axis
		want string
	}{
		{AxisWidth, "width"},
		{AxisHeight, "height"},
		{Axis(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Axis(%d).String(): got %q, want %q", int(tt.a), got, tt.want)
		}
	}
}
