package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"tock-cli/internal/config"
	"tock-cli/internal/notify"
	"tock-cli/internal/store"
)

// newWaitCmd is the entrypoint of the detached waiter process. The scheduler
// re-execs the binary with this hidden subcommand; the waiter sleeps out the
// delay, swaps its live record for a completed one, fires side effects, then
// prunes itself after the retention window.
func newWaitCmd() *cobra.Command {
	var (
		file     string
		kindStr  string
		deadline int64
		window   int64
		sound    bool
		message  string
	)

	cmd := &cobra.Command{
		Use:    "wait",
		Short:  "Internal waiter for a scheduled entry",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWait(file, kindStr, deadline, window, sound, message)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Log file path")
	cmd.Flags().StringVar(&kindStr, "kind", "TIMER", "Record kind (TIMER or ALARM)")
	cmd.Flags().Int64Var(&deadline, "deadline", 0, "Deadline, epoch seconds")
	cmd.Flags().Int64Var(&window, "window", 0, "Visibility window, seconds")
	cmd.Flags().BoolVar(&sound, "sound", false, "Play the configured sound on expiry")
	cmd.Flags().StringVar(&message, "message", "", "Entry message")

	return cmd
}

func runWait(file, kindStr string, deadline, window int64, sound bool, message string) error {
	st := store.Store{Path: file}

	kind := store.KindTimer
	if kindStr == "ALARM" {
		kind = store.KindAlarm
	}
	live := store.Entry{
		Kind:     kind,
		Deadline: deadline,
		PID:      os.Getpid(),
		Window:   window,
		Sound:    sound,
		Message:  message,
	}

	if d := time.Until(time.Unix(deadline, 0)); d > 0 {
		time.Sleep(d)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	// The canceller may have removed the live record already; exact-match
	// removal makes that a no-op rather than an error.
	_ = st.Remove(live.Line())

	done := store.Entry{
		Kind:     store.KindCompleted,
		Deadline: time.Now().Unix(),
		Message:  message,
	}
	if err := st.Append(done.Line()); err != nil {
		return err
	}

	if cfg.NotifyOnExpire {
		notify.Send("tock", message)
	}
	if sound {
		notify.PlaySound(cfg.SoundFile)
	}

	time.Sleep(cfg.CleanupAge)
	_ = st.Remove(done.Line())
	_, _ = st.Cleanup(time.Now(), cfg.CleanupAge)
	return nil
}
