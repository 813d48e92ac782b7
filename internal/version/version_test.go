package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"Dev", "dev", "unknown", "unknown", "base9 version dev ("},
		{"Release", "1.2.3", "0123456789abcdef", "2025-01-02T03:04:05Z", "base9 version 1.2.3 (commit: 01234567, built: 2025-01-02T03:04:05Z, "},
		{"ShortCommit", "1.2.3", "abc", "2025-01-02T03:04:05Z", "base9 version 1.2.3 (commit: abc, built: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			got := String()
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("String() = %q, want prefix %q", got, tt.want)
			}
			if !strings.Contains(got, GoVersion) {
				t.Errorf("String() = %q, missing Go version", got)
			}
		})
	}
}

func TestShort(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "0.9.0"
	if got := Short(); got != "0.9.0" {
		t.Errorf("Short() = %q, want 0.9.0", got)
	}
}
