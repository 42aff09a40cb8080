package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tock-cli/internal/config"
	"tock-cli/internal/format"
	"tock-cli/internal/store"
	"tock-cli/internal/timeparse"
)

const (
	iconShort = "⏳" // remaining under a day
	iconLong  = "📅" // remaining a day or more
)

// listItem is the JSON shape of one rendered entry.
type listItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Label      string `json:"label"`
	Emoji      string `json:"emoji"`
	Expiration int64  `json:"expiration"`
	Sound      bool   `json:"sound"`
}

type listRow struct {
	text string
	item listItem
}

func runList(cmd *cobra.Command, app *App) error {
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

	rows := renderRows(entries, now.Unix(), app.ShowAll, app.Precise)
	out := cmd.OutOrStdout()

	if app.JSON {
		items := make([]listItem, 0, len(rows))
		for _, r := range rows {
			items = append(items, r.item)
		}
		return format.WriteJSON(out, items, false)
	}

	if app.Vertical {
		for _, r := range rows {
			fmt.Fprintln(out, r.text)
		}
		return nil
	}

	// Horizontal status-bar line. A store with entries that are all hidden
	// prints nothing at all; a truly empty store prints one blank line so
	// polling bars get a value to display.
	if len(rows) == 0 {
		if len(entries) == 0 {
			fmt.Fprintln(out)
		}
		return nil
	}
	texts := make([]string, len(rows))
	for i, r := range rows {
		texts[i] = r.text
	}
	fmt.Fprintln(out, strings.Join(texts, " | "))
	return nil
}

func renderRows(entries []store.Entry, nowSec int64, showAll, precise bool) []listRow {
	var rows []listRow
	for _, e := range entries {
		switch e.Kind {
		case store.KindTimer, store.KindAlarm:
			remaining := e.Deadline - nowSec
			if remaining <= 0 {
				// Cleanup normally converts these first; render as done
				// rather than showing negative time if we race it.
				rows = append(rows, listRow{
					text: store.CheckMark + " " + e.Message,
					item: listItem{ID: e.PID, Name: e.Message, Label: "done", Emoji: store.CheckMark, Expiration: e.Deadline, Sound: e.Sound},
				})
				continue
			}
			if !showAll && e.Window > 0 && remaining > e.Window {
				continue
			}
			icon := iconShort
			if remaining >= 86400 {
				icon = iconLong
			}
			var text string
			if precise {
				text = timeparse.FormatPrecise(remaining) + " " + e.Message
			} else {
				text = icon + " " + timeparse.FormatRemaining(remaining) + " " + e.Message
			}
			rows = append(rows, listRow{
				text: text,
				item: listItem{ID: e.PID, Name: e.Message, Label: labelFor(e.Kind), Emoji: icon, Expiration: e.Deadline, Sound: e.Sound},
			})

		case store.KindCompleted:
			// Completed entries ignore visibility windows: they stay shown
			// until the retention prune takes them.
			rows = append(rows, listRow{
				text: store.CheckMark + " " + e.Message,
				item: listItem{Name: e.Message, Label: "done", Emoji: store.CheckMark, Expiration: e.Deadline},
			})
		}
	}
	return rows
}

func labelFor(k store.Kind) string {
	if k == store.KindAlarm {
		return "alarm"
	}
	return "timer"
}
