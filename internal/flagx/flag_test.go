package flagx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// clientFlags mirrors the client's flag set; the admin and server sets are
// filtered the same way.
var clientFlags = []string{"-a", "-i", "-db", "-audio", "-tz", "-log"}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps own flags and drops foreign ones",
			args:    []string{"-c", "unsaid.json", "-db", "cache.db", "-limit", "5", "-tz", "Europe/Riga"},
			allowed: clientFlags,
			want:    []string{"-db", "cache.db", "-tz", "Europe/Riga"},
		},
		{
			name:    "equals form",
			args:    []string{"-audio=/var/audio", "-model=gemini"},
			allowed: clientFlags,
			want:    []string{"-audio=/var/audio"},
		},
		{
			name:    "value never starts with a dash",
			args:    []string{"-log", "-db", "x.db"},
			allowed: clientFlags,
			want:    []string{"-log", "-db", "x.db"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-a"},
			allowed: clientFlags,
			want:    []string{"-a"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-tz", "UTC", "-tz", "Local"},
			allowed: clientFlags,
			want:    []string{"-tz", "UTC", "-tz", "Local"},
		},
		{
			name:    "positionals are dropped",
			args:    []string{"usage", "show", "u-42"},
			allowed: clientFlags,
			want:    []string{},
		},
		{
			name:    "nothing to filter",
			args:    nil,
			allowed: clientFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FilterArgs(tt.args, tt.allowed)); diff != "" {
				t.Errorf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "unsaid.json"}, want: "unsaid.json"},
		{name: "long", args: []string{"-config", "/etc/unsaid/server.json"}, want: "/etc/unsaid/server.json"},
		{name: "equals form among server flags", args: []string{"-d", "postgres://db", "-config=/etc/unsaid.json", "-limit", "5"}, want: "/etc/unsaid.json"},
		{name: "absent", args: []string{"-db", "cache.db"}, want: ""},
		{name: "last wins", args: []string{"-c", "a.json", "-config", "b.json"}, want: "b.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JSONConfigPath(tt.args))
		})
	}
}
