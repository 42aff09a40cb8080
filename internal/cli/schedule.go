package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tock-cli/internal/config"
	"tock-cli/internal/notify"
	"tock-cli/internal/proc"
	"tock-cli/internal/store"
	"tock-cli/internal/timeparse"
)

// Waiter process control, swappable in tests.
var (
	detachWaiter    = proc.Detach
	terminateWaiter = proc.Terminate
)

// runSchedule validates the request, detaches a waiter process and appends
// the live record. Validation is strictly fail-fast: a rejected request
// leaves no record and no process behind.
func runSchedule(cmd *cobra.Command, app *App, args []string) error {
	message := strings.TrimSpace(app.Message)
	var timeArg string
	if message == "" {
		// Positional form: <message> <time...>.
		if len(args) < 2 {
			return missingFieldsError{what: "message and time"}
		}
		message = args[0]
		timeArg = strings.Join(args[1:], " ")
	} else {
		// -m <message> <time...>
		if len(args) < 1 {
			return missingFieldsError{what: "time"}
		}
		timeArg = strings.Join(args, " ")
	}
	if message == "" {
		return missingFieldsError{what: "message"}
	}

	var window int64
	if w := strings.TrimSpace(app.Window); w != "" {
		secs, err := timeparse.ParseDuration(w)
		if err != nil {
			return invalidWindowError{arg: w}
		}
		window = secs
	}

	now := time.Now()
	mode, deadline, rolled, err := timeparse.Infer(timeArg, now)
	if err != nil {
		return err
	}
	if deadline <= now.Unix() {
		return timeInPastError{input: timeArg}
	}
	if rolled {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s already passed today, scheduling for tomorrow\n", timeArg)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := storeFor(app)
	if err != nil {
		return err
	}
	if _, err := st.Cleanup(now, cfg.CleanupAge); err != nil {
		return err
	}

	kind := store.KindTimer
	if mode == timeparse.ModeAlarm {
		kind = store.KindAlarm
	}
	entry := store.Entry{
		Kind:     kind,
		Deadline: deadline,
		Window:   window,
		Sound:    cfg.SoundOnExpire,
		Message:  message,
	}

	// The waiter's PID is the durable cancel handle, so it has to exist
	// before the record can be written. The waiter spends its first moments
	// asleep, so the record is in place long before it can matter.
	pid, err := detachWaiter(waitArgs(st.Path, entry)...)
	if err != nil {
		return err
	}
	entry.PID = pid

	if err := st.Append(entry.Line()); err != nil {
		// Without its record the waiter would still fire later; reap it so
		// a failed schedule leaves nothing behind.
		terminateWaiter(pid)
		return err
	}

	if cfg.NotifyOnCreate {
		word := "Timer"
		if kind == store.KindAlarm {
			word = "Alarm"
		}
		remaining := timeparse.FormatRemaining(deadline - now.Unix())
		notify.Send("tock", fmt.Sprintf("%s in %s: %s", word, remaining, message))
	}
	return nil
}

func waitArgs(path string, e store.Entry) []string {
	// --flag=value form throughout: messages may begin with a dash, and bool
	// flags do not consume a separate value argument.
	return []string{
		"wait",
		"--file=" + path,
		"--kind=" + e.Kind.String(),
		"--deadline=" + strconv.FormatInt(e.Deadline, 10),
		"--window=" + strconv.FormatInt(e.Window, 10),
		"--sound=" + strconv.FormatBool(e.Sound),
		"--message=" + e.Message,
	}
}
