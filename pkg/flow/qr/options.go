package qr

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/tasks"
)

type options struct {
	logger       *slog.Logger
	scheduler    tasks.Scheduler
	out          io.Writer
	clock        func() time.Time
	timeLayout   string
	defaultDelay time.Duration
	onBatch      func(flow.Batch)
}

// Option configures a Runner.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		scheduler:    tasks.TimerScheduler{},
		out:          os.Stdout,
		clock:        time.Now,
		timeLayout:   tasks.DefaultTimeLayout,
		defaultDelay: tasks.DefaultPeriod,
	}
}

// WithLogger sets the logger for batch diagnostics. Nothing is logged by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScheduler sets the delay primitive used by Delay, Wait and Sleep.
func WithScheduler(s tasks.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithOutput sets where Log, Print, LogFunc and Ts write. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func WithTimeLayout(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.timeLayout = layout
		}
	}
}

// WithDefaultDelay sets the interval used by Delay, Wait and Sleep when
// called without one.
func WithDefaultDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.defaultDelay = d
		}
	}
}

// WithBatchHook registers fn to be called after every batch drains.
func WithBatchHook(fn func(flow.Batch)) Option {
	return func(o *options) {
		o.onBatch = fn
	}
}
