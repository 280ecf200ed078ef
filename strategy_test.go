package circle

import (
	"errors"
	"testing"
)

func TestStrategy_RoundTrip(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		if err != nil {
			t.Errorf("ParseStrategy(%q) error: %v", s.String(), err)
			continue
		}
		if got != s {
			t.Errorf("ParseStrategy(%q) = %v, want %v", s.String(), got, s)
		}
		if s.Tracer() == nil {
			t.Errorf("%v has no tracer", s)
		}
		if s.Description() == "" {
			t.Errorf("%v has no description", s)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"naive", Naive},
		{"Bresenham", Bresenham},
		{" MIDPOINT ", Midpoint},
		{"classic-bresenham", ClassicBresenham},
		{"antialiased", Antialiased},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseStrategy("wu"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(%q) error = %v, want ErrUnknownStrategy", "wu", err)
	}
}

func TestStrategy_Unknown(t *testing.T) {
	s := Strategy(200)
	if s.Tracer() != nil {
		t.Error("unknown strategy returned a tracer")
	}
	if got := s.String(); got != "Strategy(200)" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Description(); got != "Strategy(200)" {
		t.Errorf("Description() = %q", got)
	}
}

func TestStrategy_TracerTypes(t *testing.T) {
	tests := []struct {
		s    Strategy
		want Tracer
	}{
		{Naive, NaiveSampler{}},
		{SqrtOctant, SqrtOctantSampler{}},
		{Quadrant, QuadrantSampler{}},
		{Midpoint, MidpointOctantTracer{}},
		{Bresenham, BresenhamOctantTracer{}},
		{ClassicBresenham, ClassicBresenhamTracer{}},
		{Antialiased, AntialiasedOctantTracer{}},
	}
	for _, tt := range tests {
		if got := tt.s.Tracer(); got != tt.want {
			t.Errorf("%v.Tracer() = %T, want %T", tt.s, got, tt.want)
		}
	}
}
