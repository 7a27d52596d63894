package solver

import (
	"time"

	"github.com/rs/zerolog"
)

// Значения по умолчанию для необязательных параметров запуска.
const (
	DefaultTolerance = 1e-6
	DefaultTimeLimit = 60 * time.Second
	// InverseTimeLimit — лимит времени обратного поиска, втрое больше обычного
	InverseTimeLimit = 3 * DefaultTimeLimit
)

// config — собранные настройки одного запуска метода
type config struct {
	target     float64
	limit      time.Duration
	increasing bool
	onIter     func(Iter) error
	log        zerolog.Logger
}

// Option — необязательная настройка запуска
type Option func(*config)

func defaultConfig() config {
	return config{
		limit:      DefaultTimeLimit,
		increasing: true,
		log:        zerolog.Nop(),
	}
}

// WithTarget задаёт целевое значение y: вместо корня f(x) = 0 ищется
// решение f(x) = y как корень функции y - f(x)
func WithTarget(y float64) Option {
	return func(c *config) { c.target = y }
}

// WithTimeLimit задаёт лимит времени работы метода. Значения <= 0 означают
// возврат текущей оценки сразу после первой итерации.
func WithTimeLimit(d time.Duration) Option {
	return func(c *config) { c.limit = d }
}

// WithIncreasing — подсказка о направлении монотонности функции.
// Метод не принимает её на веру: направление пересчитывается по значениям
// на концах отрезка при каждом запуске, подсказка только сверяется с ним.
func WithIncreasing(inc bool) Option {
	return func(c *config) { c.increasing = inc }
}

// WithIterHook задаёт обработчик, вызываемый после каждой итерации,
// сузившей отрезок. Возврат ошибки прерывает поиск; для штатной остановки
// обработчик возвращает ErrStopped.
func WithIterHook(fn func(Iter) error) Option {
	return func(c *config) { c.onIter = fn }
}

// WithLogger задаёт логгер информационных сообщений метода.
// По умолчанию сообщения не пишутся.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}
