package game

import "testing"

func TestNormalizeHeading(t *testing.T) {
	cases := map[float32]float32{
		0:    0,
		360:  0,
		370:  10,
		-2:   358,
		-725: 355,
	}
	for in, want := range cases {
		if got := NormalizeHeading(in); !Float32ApproxEq(got, want) {
			t.Errorf("NormalizeHeading(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestInvertHeading(t *testing.T) {
	if got := InvertHeading(270); !Float32ApproxEq(got, 90) {
		t.Fatalf("expected 90, got %v", got)
	}
	if got := InvertHeading(InvertHeading(12.5)); !Float32ApproxEq(got, 12.5) {
		t.Fatalf("double inversion should be identity, got %v", got)
	}
}

func TestHeadingVector(t *testing.T) {
	v := HeadingVector(0)
	if !Float32ApproxEq(v.X(), 0) || !Float32ApproxEq(v.Y(), 1) {
		t.Fatalf("heading 0 should face +Y, got %v", v)
	}
	v = HeadingVector(90)
	if !Float32ApproxEq(v.X(), -1) || !Float32ApproxEq(v.Y(), 0) {
		t.Fatalf("heading 90 should face -X, got %v", v)
	}
}

func TestHeadingDelta(t *testing.T) {
	if got := HeadingDelta(350, 10); !Float32ApproxEq(got, 20) {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := HeadingDelta(10, 350); !Float32ApproxEq(got, -20) {
		t.Fatalf("expected -20, got %v", got)
	}
}
