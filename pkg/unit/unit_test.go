package unit

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"12", Value{12, Px}},
		{"12px", Value{12, Px}},
		{" 40 ", Value{40, Px}},
		{"3pt", Value{3, Pt}},
		{"1.5cm", Value{1.5, Cm}},
		{"10mm", Value{10, Mm}},
		{"2in", Value{2, In}},
		{"2IN", Value{2, In}},
		{"-4", Value{-4, Px}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "  ", "px", "12q", "abc", "1 2"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestMetricPixels(t *testing.T) {
	m := Metric{DPI: 96}
	cases := []struct {
		v    Value
		want int
	}{
		{Value{40, Px}, 40},
		{Value{72, Pt}, 96},
		{Value{1, In}, 96},
		{Value{2.54, Cm}, 96},
		{Value{25.4, Mm}, 96},
		{Value{-3, Px}, -3},
	}
	for _, tc := range cases {
		if got := m.Pixels(tc.v); got != tc.want {
			t.Errorf("Pixels(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestZeroMetricFallsBackTo96DPI(t *testing.T) {
	var m Metric
	if got := m.Pixels(Value{1, In}); got != 96 {
		t.Errorf("zero-DPI metric resolved 1in to %d, want 96", got)
	}
}

func TestParsePixels(t *testing.T) {
	got, err := ParsePixels("18", nil)
	if err != nil {
		t.Fatalf("ParsePixels failed: %v", err)
	}
	if got != 18 {
		t.Errorf("ParsePixels(\"18\") = %d, want 18", got)
	}
}
