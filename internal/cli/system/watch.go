package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/notifier"
	"github.com/julianstephens/remind/internal/sweep"
)

type WatchCmd struct {
	Interval time.Duration `help:"Time between sweeps. Defaults to the check_interval_sec setting." default:"0"`
}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	interval := c.Interval
	if interval <= 0 {
		interval = constants.DefaultCheckInterval
		if err := ctx.Store.Load(); err == nil {
			if settings, err := ctx.Store.GetSettings(); err == nil && settings.CheckIntervalSec > 0 {
				interval = time.Duration(settings.CheckIntervalSec) * time.Second
			}
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching reminders every %s (Ctrl-C to stop)\n", interval)
	coordinator := sweep.New(ctx.Store, notifier.New())
	coordinator.Run(runCtx, interval)

	fmt.Println("Stopped")
	return nil
}
