// Package observe turns gaussian.Hooks into structured logs, trace spans and
// Prometheus metrics.
//
// Every adapter returns a plain gaussian.Hooks[T] value, so they compose by
// registering several WithHooks options on the same Solver:
//
//	m, _ := observe.NewMetrics(prometheus.NewRegistry())
//	s, _ := gaussian.New(field,
//		gaussian.WithHooks(observe.Logging[T](logger)),
//		gaussian.WithHooks(observe.Tracing[T](ctx, tracer)),
//		gaussian.WithHooks(observe.MetricsHooks[T](m)),
//	)
//
// Levels used by Logging:
//
//   - Info: solve and phase boundaries.
//   - Debug: pivot columns, row reductions, substitution steps and swaps.
//   - Error: every failure reported through OnError.
//
// Tracing opens one span per Solve with a child span per phase; pivot columns
// and swaps become span events. The returned hooks follow one operation at a
// time: build a separate value for each goroutine that solves concurrently.
//
// Metrics are safe for concurrent use.
package observe
