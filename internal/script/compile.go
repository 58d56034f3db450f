package script

import (
	"fmt"
	"io"
	"time"

	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/iter"
	"github.com/ib-77/seqflow/pkg/flow/qr"
	"github.com/ib-77/seqflow/pkg/flow/queue"
	"github.com/ib-77/seqflow/pkg/flow/tasks"
)

// Env carries the collaborators compiled steps print and wait with. The
// same values configure the runner through Options.
type Env struct {
	Out          io.Writer
	Scheduler    tasks.Scheduler
	Clock        func() time.Time
	TimeLayout   string
	DefaultDelay time.Duration
}

// Options returns runner options matching e.
func (e Env) Options() []qr.Option {
	return []qr.Option{
		qr.WithOutput(e.Out),
		qr.WithScheduler(e.Scheduler),
		qr.WithClock(e.Clock),
		qr.WithTimeLayout(e.TimeLayout),
		qr.WithDefaultDelay(e.DefaultDelay),
	}
}

// Program is a compiled flow ready to be appended to a runner.
type Program struct {
	Name string
	Seed any
	ops  []func(r *qr.Runner[any])
}

// Len is the number of top-level steps.
func (p *Program) Len() int {
	return len(p.ops)
}

// Apply appends the program's steps to r. A non-nil seed is appended first
// as a step that replaces the threaded result.
func (p *Program) Apply(r *qr.Runner[any]) *qr.Runner[any] {
	if !flow.IsNil(p.Seed) {
		r.Exec(set(p.Seed))
	}
	for _, op := range p.ops {
		op(r)
	}
	return r
}

// Compile checks f and turns it into a Program.
func Compile(f *Flow, env Env) (*Program, error) {
	p := &Program{Name: f.Name, Seed: f.Seed}

	for i, spec := range f.Steps {
		op, err := compileOp(spec, env)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		p.ops = append(p.ops, op)
	}
	return p, nil
}

// compileOp compiles a top-level step into a runner append.
func compileOp(spec StepSpec, env Env) (func(r *qr.Runner[any]), error) {
	kind, node, err := spec.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindLog:
		msg, err := decodeValue(node)
		if err != nil {
			return nil, err
		}
		return func(r *qr.Runner[any]) { r.Log(msg) }, nil
	case KindPrint:
		return func(r *qr.Runner[any]) { r.Print() }, nil
	case KindTs:
		return func(r *qr.Runner[any]) { r.Ts() }, nil
	case KindSleep:
		d, ok, err := decodeDuration(node)
		if err != nil {
			return nil, err
		}
		if !ok {
			return func(r *qr.Runner[any]) { r.Sleep() }, nil
		}
		return func(r *qr.Runner[any]) { r.Sleep(d) }, nil
	}

	task, err := compileTask(spec, env)
	if err != nil {
		return nil, err
	}
	return func(r *qr.Runner[any]) { r.Exec(task) }, nil
}

// compileTask compiles a step into a standalone task, used inside repeat
// bodies where there is no runner to append to.
func compileTask(spec StepSpec, env Env) (flow.Task[any], error) {
	kind, node, err := spec.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindLog:
		msg, err := decodeValue(node)
		if err != nil {
			return nil, err
		}
		return tasks.Log[any](env.Out, msg), nil
	case KindPrint:
		return tasks.Print[any](env.Out), nil
	case KindTs:
		return tasks.Timestamp[any](env.Out, env.Clock, env.TimeLayout), nil
	case KindSet:
		v, err := decodeValue(node)
		if err != nil {
			return nil, err
		}
		return set(v), nil
	case KindSleep:
		d, ok, err := decodeDuration(node)
		if err != nil {
			return nil, err
		}
		if !ok {
			d = env.DefaultDelay
		}
		return tasks.Sleep[any](env.Scheduler, d), nil
	case KindRepeat:
		var rs repeatSpec
		if err := node.Decode(&rs); err != nil {
			return nil, fmt.Errorf("%w: repeat: %v", ErrInvalidStep, err)
		}
		if rs.Times < 1 {
			return nil, fmt.Errorf("%w: repeat.times must be at least 1, got %d", ErrInvalidStep, rs.Times)
		}
		body := make([]flow.Task[any], 0, len(rs.Steps))
		for i, s := range rs.Steps {
			t, err := compileTask(s, env)
			if err != nil {
				return nil, fmt.Errorf("repeat step %d: %w", i+1, err)
			}
			body = append(body, t)
		}
		return repeat(rs.Times, body), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, kind)
	}
}

func set(v any) flow.Task[any] {
	return func(next flow.Continuation[any], _ any) {
		next(v)
	}
}

// repeat runs body times times, threading the result through every run.
func repeat(times int, body []flow.Task[any]) flow.Task[any] {
	return func(next flow.Continuation[any], prev any) {
		runs := 0
		iter.RepeatWhile(func(done flow.Continuation[any], result any) {
			runs++
			q := queue.New[flow.Task[any]]()
			for _, t := range body {
				q.Push(t)
			}
			queue.DrainFrom(q, result, done)
		}, func(any) bool {
			return runs < times
		}, next, prev)
	}
}
