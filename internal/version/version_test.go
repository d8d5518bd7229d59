package version

import (
	"runtime/debug"
	"testing"
)

func TestFormat(t *testing.T) {
	got := format("0123456789abcdef", "2024-05-01T10:00:00Z")
	want := "ivrprompts dev (commit: 0123456, built: 2024-05-01T10:00:00Z)"
	if got != want {
		t.Errorf("format() = %q, want %q", got, want)
	}
}

func TestFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abcdef123456"},
		{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
	}}

	tests := []struct {
		name       string
		commit     string
		built      string
		wantCommit string
		wantBuilt  string
	}{
		{name: "unset uses vcs stamp", commit: "unknown", built: "unknown", wantCommit: "abcdef123456", wantBuilt: "2024-05-01T10:00:00Z"},
		{name: "ldflags win", commit: "fedcba", built: "yesterday", wantCommit: "fedcba", wantBuilt: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit, built := fromBuildInfo(info, tt.commit, tt.built)
			if commit != tt.wantCommit || built != tt.wantBuilt {
				t.Errorf("fromBuildInfo() = (%q, %q), want (%q, %q)", commit, built, tt.wantCommit, tt.wantBuilt)
			}
		})
	}
}
