// Package trace — запись хода одного запуска метода. Записью владеет
// вызывающая сторона, глобального реестра запусков нет.
package trace

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"idz2_bisect/internal/solver"
)

// Run — идентификатор запуска и накопленная история итераций
type Run struct {
	ID        string
	CreatedAt time.Time
	Iters     []solver.Iter
}

// NewRun создаёт пустую запись с новым идентификатором
func NewRun() *Run {
	return &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Hook возвращает обработчик для solver.WithIterHook, добавляющий
// каждую итерацию в запись
func (r *Run) Hook() func(solver.Iter) error {
	return func(it solver.Iter) error {
		r.Iters = append(r.Iters, it)
		return nil
	}
}

// Last возвращает последнюю записанную итерацию
func (r *Run) Last() (solver.Iter, bool) {
	if len(r.Iters) == 0 {
		return solver.Iter{}, false
	}
	return r.Iters[len(r.Iters)-1], true
}

// WriteCSV выводит историю итераций в CSV
func (r *Run) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"k", "a", "b", "mid", "f(mid)", "b-a"}); err != nil {
		return err
	}
	for _, it := range r.Iters {
		rec := []string{
			strconv.Itoa(it.K),
			fmtFloat(it.A),
			fmtFloat(it.B),
			fmtFloat(it.XMid),
			fmtFloat(it.FXMid),
			fmtFloat(it.Len),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 16, 64)
}
