package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gotraps/internal/config"
	"gotraps/internal/traps"
)

// testCmd returns a command wired to a buffer, with the globals the RunE
// funcs read set to predictable values.
func testCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	cfg.Theme = "none" // raw markdown keeps assertions byte-stable
	docTOC = true
	docOut = ""
	t.Cleanup(func() { cfg = config.Config{}; docOut = "" })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestListCoversWholeCatalog(t *testing.T) {
	cmd, buf := testCmd(t)

	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList failed: %v", err)
	}
	out := buf.String()
	for _, e := range traps.Catalog().Entries() {
		if !strings.Contains(out, e.ID) {
			t.Errorf("list output missing entry %s", e.ID)
		}
	}
	if !strings.Contains(out, "(crashes)") {
		t.Error("list output does not mark crashing entries")
	}
}

func TestShowRendersEntry(t *testing.T) {
	cmd, buf := testCmd(t)

	if err := runShow(cmd, []string{"defer-named-result"}); err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "### A Deferred Closure Can Rewrite a Named Result") {
		t.Error("show output missing entry heading")
	}
	if !strings.Contains(out, "```go") {
		t.Error("show output missing code fence")
	}
}

func TestShowUnknownEntryFails(t *testing.T) {
	cmd, _ := testCmd(t)

	if err := runShow(cmd, []string{"no-such-trap"}); err == nil {
		t.Fatal("expected an error for an unknown entry")
	}
}

func TestRunPrintsDocumentedOutput(t *testing.T) {
	cmd, buf := testCmd(t)

	if err := runEntry(cmd, []string{"nil-error-interface"}); err != nil {
		t.Fatalf("runEntry failed: %v", err)
	}
	if got, want := buf.String(), "true\nfalse\ntrue\n"; got != want {
		t.Errorf("runEntry output = %q, want %q", got, want)
	}
}

func TestRunRefusesCrashingEntries(t *testing.T) {
	cmd, _ := testCmd(t)

	err := runEntry(cmd, []string{"goroutine-panic"})
	if err == nil {
		t.Fatal("expected refusal for a crashing entry")
	}
	if !strings.Contains(err.Error(), "documented only") {
		t.Errorf("unexpected refusal message: %v", err)
	}
}

func TestVerifyPassesOnHonestCatalog(t *testing.T) {
	cmd, buf := testCmd(t)

	if err := runVerify(cmd, nil); err != nil {
		t.Fatalf("runVerify failed: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "ok   slice-append-aliasing") {
		t.Error("verify output missing per-entry lines")
	}
}

func TestDocWritesFile(t *testing.T) {
	cmd, buf := testCmd(t)
	docOut = filepath.Join(t.TempDir(), "traps.md")

	if err := runDoc(cmd, nil); err != nil {
		t.Fatalf("runDoc failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("doc with -o should not write to stdout")
	}
	data, err := os.ReadFile(docOut)
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "# "+traps.Title) {
		t.Error("document missing title")
	}
	if !strings.Contains(string(data), "## Contents") {
		t.Error("document missing table of contents")
	}
}

func TestDocStdoutWithoutTOC(t *testing.T) {
	cmd, buf := testCmd(t)
	docTOC = false
	defer func() { docTOC = true }()

	if err := runDoc(cmd, nil); err != nil {
		t.Fatalf("runDoc failed: %v", err)
	}
	if strings.Contains(buf.String(), "## Contents") {
		t.Error("--toc=false still emitted a table of contents")
	}
}
