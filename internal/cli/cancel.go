package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tock-cli/internal/config"
	"tock-cli/internal/proc"
	"tock-cli/internal/store"
	"tock-cli/internal/timeparse"
)

type cancelStyles struct {
	index lipgloss.Style
	meta  lipgloss.Style
}

func newCancelStyles() cancelStyles {
	// EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE and NO_COLOR, so the
	// menu degrades to plain text on dumb terminals and in pipes.
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	return cancelStyles{
		index: lipgloss.NewStyle().Bold(true),
		meta:  lipgloss.NewStyle().Faint(true),
	}
}

// runCancel lists pending entries by number, reads one selection, terminates
// the matching waiter and removes its record. "nothing to cancel" and an
// invalid selection are informational outcomes, not errors.
func runCancel(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := storeFor(app)
	if err != nil {
		return err
	}
	now := time.Now()
	entries, err := st.Cleanup(now, cfg.CleanupAge)
	if err != nil {
		return err
	}

	var live []store.Entry
	for _, e := range entries {
		if e.Live() {
			live = append(live, e)
		}
	}

	out := cmd.OutOrStdout()
	if len(live) == 0 {
		fmt.Fprintln(out, "nothing to cancel")
		return nil
	}

	styles := newCancelStyles()
	for i, e := range live {
		remaining := timeparse.FormatRemaining(e.Deadline - now.Unix())
		meta := fmt.Sprintf("(%s, %s left)", labelFor(e.Kind), remaining)
		fmt.Fprintf(out, "%s %s %s\n", styles.index.Render(fmt.Sprintf("%d)", i+1)), e.Message, styles.meta.Render(meta))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cancel> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		// Interrupt or EOF: leave everything as it is.
		return nil
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || n < 1 || n > len(live) {
		fmt.Fprintln(out, "invalid selection")
		return nil
	}

	target := live[n-1]
	// Best-effort: the waiter may have fired and exited between the menu and
	// the selection. Removal is exact-text, so if the record was already
	// replaced by a completed one nothing else is touched.
	proc.Terminate(target.PID)
	return st.Remove(target.Raw)
}
