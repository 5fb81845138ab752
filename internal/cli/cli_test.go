package cli

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", today, false},
		{"today", today, false},
		{"yesterday", yesterday, false},
		{"2026-08-17", "2026-08-17", false},
		{"17-08-2026", "", true},
		{"tomorrow", "", true},
	}

	for _, c := range cases {
		got, err := resolveDate(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("resolveDate(%q): expected an error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("resolveDate(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("resolveDate(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestLogCmdValidate(t *testing.T) {
	valid := LogCmd{Social: 60, Steps: 5000, Sleep: 7.5, Wake: "07:30"}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error for valid flags: %v", err)
	}

	cases := []struct {
		name string
		cmd  LogCmd
	}{
		{"negative minutes", LogCmd{Social: -5}},
		{"negative steps", LogCmd{Steps: -1}},
		{"sleep above 24", LogCmd{Sleep: 25}},
		{"negative sleep", LogCmd{Sleep: -1}},
		{"malformed wake time", LogCmd{Wake: "7am"}},
		{"wake hour out of range", LogCmd{Wake: "25:00"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.cmd.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
