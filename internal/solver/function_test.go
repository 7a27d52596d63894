package solver

import (
	"math"
	"testing"
)

func TestNewEvalFunc(t *testing.T) {
	tests := []struct {
		name string
		expr string
		x    float64
		want float64
	}{
		{name: "cubic", expr: "(x - 2) ** 3", x: 3, want: 1},
		{name: "cubic at root", expr: "(x - 2) ** 3", x: 2, want: 0},
		{name: "pow", expr: "pow(x, 2) + 1", x: 2, want: 5},
		{name: "sqrt abs", expr: "sqrt(abs(x))", x: -4, want: 2},
		{name: "cbrt", expr: "cbrt(x)", x: 27, want: 3},
		{name: "decimal comma", expr: "x - 0,5", x: 1, want: 0.5},
		{name: "sin", expr: "sin(x)", x: 0, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewEvalFunc(tc.expr)
			if err != nil {
				t.Fatalf("NewEvalFunc(%q): %v", tc.expr, err)
			}
			got, err := f.Eval(tc.x)
			if err != nil {
				t.Fatalf("Eval(%g): %v", tc.x, err)
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("Eval(%g) = %g, want %g", tc.x, got, tc.want)
			}
		})
	}
}

func TestNewEvalFuncParseError(t *testing.T) {
	if _, err := NewEvalFunc("x +* 2"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEvalFuncNonNumeric(t *testing.T) {
	f, err := NewEvalFunc("x > 1")
	if err != nil {
		t.Fatalf("NewEvalFunc: %v", err)
	}
	if _, err := f.Eval(0); err == nil {
		t.Fatal("expected error for non-numeric result")
	}
}

func TestBisectWithEvalFunc(t *testing.T) {
	f, err := NewEvalFunc("(x - 2) ** 3")
	if err != nil {
		t.Fatalf("NewEvalFunc: %v", err)
	}
	res, err := Bisect(f, -5, 5, 1e-10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Root-2) > 1e-3 {
		t.Fatalf("root = %g, want ~2", res.Root)
	}
}
