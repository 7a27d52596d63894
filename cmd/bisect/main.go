package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"idz2_bisect/internal/solver"
	"idz2_bisect/internal/trace"
)

func main() {
	var (
		expr    = flag.String("func", "(x - 2) ** 3", "выражение функции f(x)")
		a       = flag.Float64("a", -5.0, "левый конец отрезка")
		b       = flag.Float64("b", 5.0, "правый конец отрезка")
		tol     = flag.Float64("tol", solver.DefaultTolerance, "требуемая точность: |f(x)| <= tol")
		y       = flag.Float64("y", 0, "целевое значение: при y != 0 ищется x с f(x) = y")
		limit   = flag.Duration("limit", solver.DefaultTimeLimit, "лимит времени поиска")
		withCSV = flag.Bool("trace", false, "вывести историю итераций в CSV на stdout")
		asJSON  = flag.Bool("json", false, "вывести результат в JSON на stdout")
		verbose = flag.Bool("v", false, "подробный лог")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	f, err := solver.NewEvalFunc(*expr)
	if err != nil {
		log.Fatal().Err(err).Str("func", *expr).Msg("ошибка в выражении функции")
	}

	// -limit передаётся методу, только если флаг задан явно:
	// у обратного поиска собственный лимит по умолчанию
	var limitSet bool
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "limit" {
			limitSet = true
		}
	})

	rec := trace.NewRun()
	opts := []solver.Option{
		solver.WithLogger(log.With().Str("run_id", rec.ID).Logger()),
		solver.WithIterHook(rec.Hook()),
	}
	if limitSet {
		opts = append(opts, solver.WithTimeLimit(*limit))
	}

	if *y != 0 {
		runInverse(log, f, *y, *a, *b, *tol, opts, *asJSON)
	} else {
		runRoot(log, f, *a, *b, *tol, opts, *asJSON)
	}

	if *withCSV {
		if err := rec.WriteCSV(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("не удалось вывести историю итераций")
		}
	}
}

// runRoot — демонстрация поиска корня f(x) = 0
func runRoot(log zerolog.Logger, f solver.Func, a, b, tol float64, opts []solver.Option, asJSON bool) {
	res, err := solver.Bisect(f, a, b, tol, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("поиск корня прерван")
	}

	if asJSON {
		_ = json.NewEncoder(os.Stdout).Encode(res)
		return
	}
	fmt.Printf("Корень x = %.10g найден за %v (итераций: %d, статус: %s).\n",
		res.Root, res.Elapsed, res.Iters, res.Status)
	fmt.Printf("Значение функции: %g.\n", res.Value)
}

// runInverse — демонстрация поиска обратного значения f(x) = y
func runInverse(log zerolog.Logger, f solver.Func, y, a, b, tol float64, opts []solver.Option, asJSON bool) {
	x, elapsed, err := solver.FindInverse(f, y, a, b, tol, opts...)
	if err != nil {
		log.Fatal().Err(err).Float64("y", y).Msg("поиск обратного значения прерван")
	}

	if asJSON {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]any{
			"y":       y,
			"inverse": x,
			"elapsed": elapsed,
		})
		return
	}
	fmt.Printf("Обратное значение f^(-1)(%g) = %.6f найдено за %v.\n", y, x, elapsed)
}
