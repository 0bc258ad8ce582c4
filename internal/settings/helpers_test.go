package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sailfishos-on-tucana/ngfd/internal/feedback"
	"github.com/sailfishos-on-tucana/ngfd/internal/keyfile"
)

// writeSettings writes a fixture settings file and returns its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ngf.ini")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write settings fixture: %v", err)
	}
	return path
}

// newTestResolver builds a resolver over a fixture settings file, with a
// fresh registry and diagnostics record.
func newTestResolver(t *testing.T, content string) *resolver {
	t.Helper()

	file, err := keyfile.Load(writeSettings(t, content))
	if err != nil {
		t.Fatalf("failed to load settings fixture: %v", err)
	}

	return &resolver{
		file:   file,
		reg:    feedback.NewRegistry(),
		diags:  &Diagnostics{},
		log:    noopLogger{},
		groups: make(map[string]eventGroup),
		props:  make(map[string]*propList),
		state:  make(map[string]resolveState),
	}
}
