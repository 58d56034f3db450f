package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/seqflow/internal/config"
	"github.com/ib-77/seqflow/internal/logging"
	"github.com/ib-77/seqflow/internal/script"
	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/core"
	"github.com/ib-77/seqflow/pkg/flow/qr"
	"github.com/ib-77/seqflow/pkg/flow/tasks"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Execute a flow file and wait for it to finish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(cmd, v, args[0])
		},
	}

	cmd.Flags().Duration("timeout", 0, "give up waiting after this long (0 waits forever)")
	cmd.Flags().Duration("default-delay", 0, "delay used by sleep steps without a duration")
	_ = v.BindPFlag("runner.timeout", cmd.Flags().Lookup("timeout"))
	_ = v.BindPFlag("runner.default_delay", cmd.Flags().Lookup("default-delay"))

	return cmd
}

func runFlow(cmd *cobra.Command, v *viper.Viper, path string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	prog, err := compileFile(cmd, cfg, path)
	if err != nil {
		return err
	}

	logger = logger.With("flow", prog.Name)

	// finish fires from the batch hook after the closing step has drained.
	var (
		r      *qr.Runner[any]
		closed atomic.Bool
		finish flow.Continuation[any]
	)
	opts := append(envFor(cmd, cfg).Options(),
		qr.WithLogger(logger),
		qr.WithBatchHook(func(b flow.Batch) {
			logger.Debug("batch drained", "batch_id", b.ID.String(), "tasks", b.Tasks, "elapsed", b.Elapsed())
			if closed.Load() {
				flow.Invoke(finish, r.LastResult())
			}
		}),
	)
	r = qr.New[any](opts...)

	logger.Info("flow started", "runner_id", r.ID().String(), "steps", prog.Len())
	start := time.Now()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Runner.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Runner.Timeout)
		defer cancel()
	}

	result, err := core.Await(ctx, func(done flow.Continuation[any]) {
		finish = done
		prog.Apply(r).Sync(func() { closed.Store(true) })
	})
	if err != nil {
		return fmt.Errorf("flow %s did not finish: %w", prog.Name, err)
	}

	logger.Info("flow finished", slog.Any("result", result), slog.Duration("elapsed", time.Since(start)))
	return nil
}

func compileFile(cmd *cobra.Command, cfg *config.Config, path string) (*script.Program, error) {
	f, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	return script.Compile(f, envFor(cmd, cfg))
}

func envFor(cmd *cobra.Command, cfg *config.Config) script.Env {
	return script.Env{
		Out:          cmd.OutOrStdout(),
		Scheduler:    tasks.TimerScheduler{},
		Clock:        time.Now,
		TimeLayout:   cfg.Runner.TimeLayout,
		DefaultDelay: cfg.Runner.DefaultDelay,
	}
}
