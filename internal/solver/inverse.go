package solver

import "time"

// FindInverse — поиск обратного значения функции: такого x из [a, b], что
// f(x) = y. Сводится к поиску корня функции y - f(x) методом Bisect с
// лимитом времени InverseTimeLimit (явный WithTimeLimit в opts имеет
// приоритет). Остаточное значение y - f(x) в найденной точке отбрасывается.
//
// Предусловие a <= y <= b сверяет y с границами отрезка поиска,
// а не с областью значений f.
func FindInverse(f Func, y, a, b, tolerance float64, opts ...Option) (float64, time.Duration, error) {
	start := time.Now()

	if y < a || y > b {
		return 0, time.Since(start), ErrOutOfRange
	}

	merged := make([]Option, 0, len(opts)+2)
	merged = append(merged, WithTimeLimit(InverseTimeLimit))
	merged = append(merged, opts...)
	merged = append(merged, WithTarget(y))

	res, err := Bisect(f, a, b, tolerance, merged...)
	return res.Root, time.Since(start), err
}
