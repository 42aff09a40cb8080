package cli

import (
	"reflect"
	"testing"
)

// Inputs mirror what users put in $VISUAL/$EDITOR for editing tock.conf.
func TestSplitShellWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"nano", []string{"nano"}},
		{"code --wait --new-window", []string{"code", "--wait", "--new-window"}},
		{"emacsclient -a '' -t", []string{"emacsclient", "-a", "-t"}},
		{"vim -c \"set ft=dosini\"", []string{"vim", "-c", "set ft=dosini"}},
		{"'/opt/My Editor/ed' -n", []string{"/opt/My Editor/ed", "-n"}},
		{"open\\ -t", []string{"open -t"}},
		{"  vi   tock.conf  ", []string{"vi", "tock.conf"}},
	}

	for _, tt := range tests {
		if got := splitShellWords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("splitShellWords(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}
}
