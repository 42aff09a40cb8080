package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tock-cli/internal/store"
)

// runTock executes the root command against a temp log file and returns
// stdout. TOCK_CONFIG points at a missing file so defaults apply.
func runTock(t *testing.T, logPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TOCK_CONFIG", filepath.Join(t.TempDir(), "no.conf"))

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--file", logPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func futureLine(message string, in time.Duration, pid int, window int64) string {
	return store.Entry{
		Kind:     store.KindTimer,
		Deadline: time.Now().Add(in).Unix(),
		PID:      pid,
		Window:   window,
		Message:  message,
	}.Line()
}

func seedStore(t *testing.T, lines ...string) store.Store {
	t.Helper()
	st := store.Store{Path: filepath.Join(t.TempDir(), "timers.log")}
	for _, l := range lines {
		if err := st.Append(l); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return st
}

func TestListHorizontalJoin(t *testing.T) {
	st := seedStore(t,
		futureLine("tea", 5*time.Minute, 101, 0),
		futureLine("laundry", 40*time.Minute, 102, 0),
	)

	out, err := runTock(t, st.Path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	line := strings.TrimRight(out, "\n")
	if !strings.Contains(line, " | ") {
		t.Fatalf("expected pipe-joined entries, got %q", line)
	}
	parts := strings.Split(line, " | ")
	if len(parts) != 2 {
		t.Fatalf("expected 2 entries, got %d: %q", len(parts), line)
	}
	if !strings.Contains(parts[0], "tea") || !strings.Contains(parts[1], "laundry") {
		t.Fatalf("entries out of order or missing: %q", line)
	}
}

func TestListEmptyStorePrintsBlankLine(t *testing.T) {
	st := seedStore(t)

	out, err := runTock(t, st.Path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "\n" {
		t.Fatalf("expected a single blank line for an empty store, got %q", out)
	}
}

func TestListAllHiddenPrintsNothing(t *testing.T) {
	// One entry, far away, with a small visibility window: suppressed by
	// default but the store is not empty, so not even a blank line appears.
	st := seedStore(t, futureLine("later", 2*time.Hour, 101, 60))

	out, err := runTock(t, st.Path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}

	out, err = runTock(t, st.Path, "--all")
	if err != nil {
		t.Fatalf("list --all: %v", err)
	}
	if !strings.Contains(out, "later") {
		t.Fatalf("--all should show windowed entries, got %q", out)
	}
}

func TestListWindowElapsedShowsEntry(t *testing.T) {
	// Remaining 30s, window 60s: the entry is close enough to show.
	st := seedStore(t, futureLine("soon", 30*time.Second, 101, 60))

	out, err := runTock(t, st.Path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "soon") {
		t.Fatalf("entry within its window should be listed, got %q", out)
	}
}

func TestListVertical(t *testing.T) {
	st := seedStore(t,
		futureLine("one", 5*time.Minute, 101, 0),
		futureLine("two", 6*time.Minute, 102, 0),
	)

	out, err := runTock(t, st.Path, "-1")
	if err != nil {
		t.Fatalf("list -1: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}

	// Vertical mode prints nothing at all for an empty store.
	empty := seedStore(t)
	out, err = runTock(t, empty.Path, "-1")
	if err != nil {
		t.Fatalf("list -1 empty: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestListPrecise(t *testing.T) {
	st := seedStore(t, futureLine("tea", 5*time.Minute, 101, 0))

	out, err := runTock(t, st.Path, "-s")
	if err != nil {
		t.Fatalf("list -s: %v", err)
	}
	// 5 minutes minus test overhead: 00:04:5x or 00:05:00.
	if !strings.Contains(out, "00:0") || !strings.Contains(out, "tea") {
		t.Fatalf("expected HH:MM:SS rendering, got %q", out)
	}
	if strings.Contains(out, iconShort) || strings.Contains(out, iconLong) {
		t.Fatalf("precise mode must not render icons, got %q", out)
	}
}

func TestListJSON(t *testing.T) {
	st := seedStore(t,
		futureLine("tea", 5*time.Minute, 101, 0),
		store.Entry{Kind: store.KindCompleted, Deadline: time.Now().Unix(), Message: "done thing"}.Line(),
	)

	out, err := runTock(t, st.Path, "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		for _, key := range []string{"id", "name", "label", "emoji", "expiration", "sound"} {
			if _, ok := it[key]; !ok {
				t.Errorf("item missing %q: %v", key, it)
			}
		}
	}
	if items[0]["label"] != "timer" || items[1]["label"] != "done" {
		t.Fatalf("unexpected labels: %v", items)
	}
}

func TestListJSONEmpty(t *testing.T) {
	st := seedStore(t)

	out, err := runTock(t, st.Path, "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected [], got %q", out)
	}
}

func TestListPrunesStaleCompleted(t *testing.T) {
	stale := store.Entry{
		Kind:     store.KindCompleted,
		Deadline: time.Now().Add(-time.Hour).Unix(),
		Message:  "ancient",
	}.Line()
	st := seedStore(t, stale, futureLine("tea", 5*time.Minute, 101, 0))

	out, err := runTock(t, st.Path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(out, "ancient") {
		t.Fatalf("stale completed entry in output: %q", out)
	}

	entries, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, e := range entries {
		if e.Message == "ancient" {
			t.Fatalf("stale completed entry still stored")
		}
	}
}

func TestRenderRowsLongRangeIcon(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()
	entries := []store.Entry{
		{Kind: store.KindTimer, Deadline: now + 2*86400, PID: 1, Message: "far"},
		{Kind: store.KindTimer, Deadline: now + 60, PID: 2, Message: "near"},
	}
	rows := renderRows(entries, now, false, false)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !strings.HasPrefix(rows[0].text, iconLong) {
		t.Errorf("entries a day out get the long-range icon, got %q", rows[0].text)
	}
	if !strings.HasPrefix(rows[1].text, iconShort) {
		t.Errorf("near entries get the short-range icon, got %q", rows[1].text)
	}
}

func TestRenderRowsDueEntryRendersDone(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()
	entries := []store.Entry{
		{Kind: store.KindTimer, Deadline: now - 1, PID: 1, Message: "raced"},
	}
	rows := renderRows(entries, now, false, false)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !strings.HasPrefix(rows[0].text, store.CheckMark) {
		t.Errorf("a due entry renders completed-style, got %q", rows[0].text)
	}
	if rows[0].item.Label != "done" || rows[0].item.Emoji != store.CheckMark {
		t.Errorf("a due entry gets the done label, got %q/%q", rows[0].item.Label, rows[0].item.Emoji)
	}
}
