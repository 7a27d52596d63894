package trace

import (
	"bytes"
	"testing"

	"idz2_bisect/internal/solver"
)

func TestRunRecordsIterations(t *testing.T) {
	rec := NewRun()
	if rec.ID == "" {
		t.Fatal("empty run id")
	}

	f := solver.FloatFunc(func(x float64) float64 { return (x - 2) * (x - 2) * (x - 2) })
	res, err := solver.Bisect(f, -5, 5, 1e-10, solver.WithIterHook(rec.Hook()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// сошедшаяся итерация отрезок не сужает и в запись не попадает
	if len(rec.Iters) != res.Iters-1 {
		t.Fatalf("recorded %d iterations, want %d", len(rec.Iters), res.Iters-1)
	}
	last, ok := rec.Last()
	if !ok {
		t.Fatal("no iterations recorded")
	}
	if last.K != res.Iters-1 {
		t.Fatalf("last recorded iteration %d, want %d", last.K, res.Iters-1)
	}
}

func TestRunIDsUnique(t *testing.T) {
	if NewRun().ID == NewRun().ID {
		t.Fatal("run ids must differ")
	}
}

func TestLastEmpty(t *testing.T) {
	if _, ok := NewRun().Last(); ok {
		t.Fatal("Last() on empty run must report absence")
	}
}

func TestWriteCSV(t *testing.T) {
	rec := NewRun()
	rec.Iters = []solver.Iter{
		{K: 1, A: 0, B: 0.5, XMid: 0.5, FXMid: 0.25, Len: 0.5},
		{K: 2, A: 0.25, B: 0.5, XMid: 0.25, FXMid: -0.125, Len: 0.25},
	}

	var buf bytes.Buffer
	if err := rec.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "k,a,b,mid,f(mid),b-a\n" +
		"1,0,0.5,0.5,0.25,0.5\n" +
		"2,0.25,0.5,0.25,-0.125,0.25\n"
	if buf.String() != want {
		t.Fatalf("csv mismatch:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRun().WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != "k,a,b,mid,f(mid),b-a\n" {
		t.Fatalf("csv mismatch: %q", buf.String())
	}
}
