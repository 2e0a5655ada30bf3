package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "api", "")

	l.Debug().Msg("hidden")
	l.Info().Str("city", "paris").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the info line, got %q", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["service"] != "api" || rec["city"] != "paris" || rec["message"] != "shown" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	devLog := newLogger(&buf, "dev", "api", "")
	devLog.Debug().Msg("dev debug")
	if !strings.Contains(buf.String(), "dev debug") {
		t.Fatalf("dev should log debug, got %q", buf.String())
	}

	buf.Reset()
	warnLog := newLogger(&buf, "dev", "api", "warn")
	warnLog.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Fatalf("explicit level should win, got %q", buf.String())
	}

	buf.Reset()
	badLog := newLogger(&buf, "prod", "api", "nonsense")
	badLog.Info().Msg("default")
	if !strings.Contains(buf.String(), "default") {
		t.Fatalf("bad level should keep the default, got %q", buf.String())
	}
}
