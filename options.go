package dynvec

type options[T any] struct {
	lifecycle Lifecycle[T]
	logger    *Logger
	metrics   MetricsCollector
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures vector construction.
type Option[T any] func(*options[T])

// WithLifecycle sets the element lifecycle hooks. The zero Lifecycle (the
// default) describes a trivial element type.
func WithLifecycle[T any](l Lifecycle[T]) Option[T] {
	return func(o *options[T]) {
		o.lifecycle = l
	}
}

// WithLogger sets the logger used for growth and relocation events.
//
// If nil is passed, logging is disabled.
func WithLogger[T any](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector.
//
// If nil is passed, metrics collection is disabled.
func WithMetrics[T any](mc MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
