package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const convertMarkup = `<form>
  <div class="question">
    <p>What is your favorite color?</p>
    <label><input type="radio" name="q0" value="Red" /> Red</label>
    <label><input type="radio" name="q0" value="Blue" /> Blue</label>
  </div>
</form>`

// TestConvertMarkupToPython verifies markup input renders a python sample
// with the embedded payload.
func TestConvertMarkupToPython(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "form.html")
	if err := os.WriteFile(in, []byte(convertMarkup), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"convert", "--from", "markup", "--to", "python", "--in", in}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "payload = {") {
		t.Fatalf("expected payload assignment, got %q", out)
	}
	if !strings.Contains(out, `"What is your favorite color?"`) {
		t.Fatalf("expected question text in payload, got %q", out)
	}
}

// TestConvertCodeToMarkup verifies a code sample converts back to canonical
// markup through its embedded payload.
func TestConvertCodeToMarkup(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "form.html")
	if err := os.WriteFile(in, []byte(convertMarkup), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	py := filepath.Join(dir, "sample.py")

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"convert", "--from", "markup", "--to", "python", "--in", in, "--out", py}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("first conversion failed: %s", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"convert", "--from", "python", "--to", "markup", "--in", py}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("second conversion failed: %s", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, `<p>What is your favorite color?</p>`) {
		t.Fatalf("expected question markup, got %q", out)
	}
	if !strings.Contains(out, `value="Blue"`) {
		t.Fatalf("expected option markup, got %q", out)
	}
}

// TestConvertMissingBlock verifies code input without a payload block fails
// with a readable error.
func TestConvertMissingBlock(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.py")
	if err := os.WriteFile(in, []byte("# no payload here\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"convert", "--from", "python", "--to", "markup", "--in", in}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no payload block") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

// TestConvertRejectsUnknownView verifies an unsupported view name is a usage
// error.
func TestConvertRejectsUnknownView(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"convert", "--from", "ruby", "--to", "markup"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
