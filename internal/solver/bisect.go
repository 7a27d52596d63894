// Package solver реализует поиск корня и обратного значения строго
// монотонной скалярной функции на отрезке методом бисекции.
package solver

import (
	"errors"
	"math"
	"time"
)

// Iter — одна итерация метода бисекции: номер, отрезок после сужения,
// середина текущего шага и значение эффективной функции в ней
type Iter struct {
	K     int     `json:"k"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	XMid  float64 `json:"xmid"`
	FXMid float64 `json:"fxmid"`
	Len   float64 `json:"len"`
}

// Status — исход безошибочно завершившегося поиска
type Status string

const (
	// Converged — найдена точка с |f(x)| в пределах точности
	Converged Status = "converged"
	// TimedOut — лимит времени исчерпан, возвращена текущая оценка
	TimedOut Status = "timed_out"
)

// Result — итог одного запуска метода. При возврате с ошибкой поля несут
// последнее достигнутое состояние, а Status остаётся пустым.
type Result struct {
	Root    float64       `json:"root"`
	Value   float64       `json:"value"`
	Iters   int           `json:"iters"`
	Elapsed time.Duration `json:"elapsed"`
	Status  Status        `json:"status,omitempty"`
}

// Ошибки нарушенных предусловий и остановки поиска.
var (
	ErrInvalidInterval  = errors.New("bisect: interval must satisfy a < b")
	ErrInvalidTolerance = errors.New("bisect: tolerance must be positive")
	ErrNotMonotonic     = errors.New("bisect: function is not strictly monotonic on [a, b]")
	ErrOutOfRange       = errors.New("bisect: target value y is outside [a, b]")
	ErrStopped          = errors.New("bisect: stopped by callback")
)

// Bisect — поиск корня строго монотонной функции f на отрезке [a, b]
// методом бисекции: отрезок делится пополам, пока |f(c)| в середине не
// уложится в tolerance либо не истечёт лимит времени. Исчерпание лимита —
// не ошибка: возвращается текущая оценка со статусом TimedOut.
//
// Через опции задаются целевое значение y (поиск обратного значения как
// корня y - f(x)), лимит времени, обработчик итераций и логгер.
func Bisect(f Func, a, b, tolerance float64, opts ...Option) (Result, error) {
	start := time.Now()

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if a >= b {
		return Result{}, ErrInvalidInterval
	}
	if tolerance <= 0 {
		return Result{}, ErrInvalidTolerance
	}

	increasing, err := IsIncreasing(f, a, b)
	if err != nil {
		return Result{}, err
	}
	if increasing {
		cfg.log.Info().Float64("a", a).Float64("b", b).
			Msg("function is strictly increasing on the interval")
	} else {
		cfg.log.Info().Float64("a", a).Float64("b", b).
			Msg("function is strictly decreasing on the interval")
	}
	if increasing != cfg.increasing {
		cfg.log.Debug().Bool("hint", cfg.increasing).Bool("actual", increasing).
			Msg("monotonicity hint overridden by endpoint check")
	}
	if cfg.target != 0 {
		// ищется корень y - f(x): направление монотонности обратно направлению f
		increasing = !increasing
		cfg.log.Debug().Float64("y", cfg.target).Bool("increasing", increasing).
			Msg("searching for inverse value, effective monotonicity flipped")
	}

	var last Iter
	for k := 1; ; k++ {
		c := (a + b) / 2

		fc, err := f.Eval(c)
		if err != nil {
			return partialResult(last, start), err
		}
		eff := fc
		if cfg.target != 0 {
			eff = cfg.target - fc
		}

		if math.Abs(eff) <= tolerance {
			return Result{
				Root:    c,
				Value:   eff,
				Iters:   k,
				Elapsed: time.Since(start),
				Status:  Converged,
			}, nil
		}

		if increasing {
			if eff > 0 {
				b = c
			} else {
				a = c
			}
		} else {
			if eff > 0 {
				a = c
			} else {
				b = c
			}
		}

		last = Iter{K: k, A: a, B: b, XMid: c, FXMid: eff, Len: b - a}
		if cfg.onIter != nil {
			if err := cfg.onIter(last); err != nil {
				return partialResult(last, start), err
			}
		}

		// мягкий дедлайн: проверяется раз в итерацию и не прерывает
		// затянувшийся Eval
		if time.Since(start) > cfg.limit {
			cfg.log.Warn().Dur("limit", cfg.limit).
				Float64("estimate", c).Float64("value", eff).
				Msg("time limit reached, returning current best estimate")
			return Result{
				Root:    c,
				Value:   eff,
				Iters:   k,
				Elapsed: time.Since(start),
				Status:  TimedOut,
			}, nil
		}
	}
}

// partialResult — состояние на момент прерывания поиска ошибкой
func partialResult(last Iter, start time.Time) Result {
	return Result{
		Root:    last.XMid,
		Value:   last.FXMid,
		Iters:   last.K,
		Elapsed: time.Since(start),
	}
}
