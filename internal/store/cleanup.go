package store

import "time"

// Cleanup prunes the log: live records whose deadline has passed (a record
// exactly due is eligible), completed records older than the retention
// window. Unrecognized lines are kept for forward compatibility. The file is
// rewritten only when something was dropped, and the surviving entries are
// returned so callers avoid a second load.
func (s Store) Cleanup(now time.Time, retention time.Duration) ([]Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}

	nowSec := now.Unix()
	retSec := int64(retention / time.Second)
	kept := make([]Entry, 0, len(entries))
	changed := false
	for _, e := range entries {
		switch e.Kind {
		case KindTimer, KindAlarm:
			if e.Deadline > nowSec {
				kept = append(kept, e)
			} else {
				changed = true
			}
		case KindCompleted:
			if nowSec-e.Deadline < retSec {
				kept = append(kept, e)
			} else {
				changed = true
			}
		default:
			kept = append(kept, e)
		}
	}

	if changed {
		lines := make([]string, len(kept))
		for i, e := range kept {
			lines[i] = e.Raw
		}
		if err := s.Rewrite(lines); err != nil {
			return nil, err
		}
	}
	return kept, nil
}
