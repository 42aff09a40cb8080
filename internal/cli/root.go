package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tock-cli/internal/store"
)

// App carries the flag state for one invocation.
type App struct {
	File string // log file path override

	Message string
	Window  string

	Cancel     bool
	Precise    bool
	Vertical   bool
	ShowAll    bool
	JSON       bool
	EditConfig bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tock [message] [time]",
		Short:        "Countdown timers and alarms for your status bar",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # 25 minute timer
  tock tea 25m

  # alarm at quarter past six, hidden until the last 10 minutes
  tock -n 10m -m standup 18:15

  # current entries, one line, pipe-separated (status bar text)
  tock

  # cancel interactively
  tock -c
`),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case app.EditConfig:
				return runEditConfig(cmd)
			case app.Cancel:
				return runCancel(cmd, app)
			}
			if len(args) == 0 && strings.TrimSpace(app.Message) == "" {
				return runList(cmd, app)
			}
			return runSchedule(cmd, app, args)
		},
	}

	cmd.Flags().StringVarP(&app.Message, "message", "m", "", "Label for the new timer or alarm")
	cmd.Flags().StringVarP(&app.Window, "near", "n", "", "Hide the new entry until remaining time is within this duration")
	cmd.Flags().BoolVarP(&app.Cancel, "cancel", "c", false, "Cancel a pending timer or alarm interactively")
	cmd.Flags().BoolVarP(&app.Precise, "seconds", "s", false, "List remaining time as HH:MM:SS")
	cmd.Flags().BoolVarP(&app.Vertical, "vertical", "1", false, "List one entry per line")
	cmd.Flags().BoolVarP(&app.ShowAll, "all", "a", false, "List entries regardless of visibility windows")
	cmd.Flags().BoolVar(&app.JSON, "json", false, "List as a JSON array")
	cmd.Flags().BoolVar(&app.EditConfig, "config", false, "Open the configuration file in your editor")
	cmd.PersistentFlags().StringVar(&app.File, "file", envOr("TOCK_FILE", ""), "Path to the timer log file")

	cmd.AddCommand(newWaitCmd())

	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func storeFor(app *App) (store.Store, error) {
	if p := strings.TrimSpace(app.File); p != "" {
		return store.Store{Path: p}, nil
	}
	p, err := store.DefaultPath()
	if err != nil {
		return store.Store{}, err
	}
	return store.Store{Path: p}, nil
}
