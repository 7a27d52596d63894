package solver

// IsIncreasing — проверка строгой монотонности f на отрезке [a, b] по
// значениям на концах: f(a) < f(b) — возрастает (true), f(a) > f(b) —
// убывает (false). При f(a) == f(b) возвращается ErrNotMonotonic.
func IsIncreasing(f Func, a, b float64) (bool, error) {
	fa, err := f.Eval(a)
	if err != nil {
		return false, err
	}
	fb, err := f.Eval(b)
	if err != nil {
		return false, err
	}

	switch {
	case fa > fb:
		return false, nil
	case fa < fb:
		return true, nil
	default:
		return false, ErrNotMonotonic
	}
}
