package sanity_check

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(&buf); err != nil {
		t.Fatalf("sanity check failed: %v\n%s", err, buf.String())
	}
	if strings.Contains(buf.String(), "FAIL") {
		t.Errorf("output reports a failure:\n%s", buf.String())
	}
	if got := strings.Count(buf.String(), "ok\t"); got != len(Checks()) {
		t.Errorf("%d checks passed, want %d", got, len(Checks()))
	}
}
