package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestValidatePayloadOK verifies a well-formed payload file passes.
func TestValidatePayloadOK(t *testing.T) {
	path := writeFile(t, "payload.json", `{
  "form": [
    {
      "question": "What is your favorite color?",
      "answer": [],
      "type": "radio",
      "options": ["Red", "Blue"],
      "logic": [{"option": "Blue", "showQuestions": []}]
    }
  ]
}`)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--payload", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Payload OK (1 questions)") {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}

// TestValidatePayloadTolerantSyntax verifies comments and trailing commas in
// the payload file are accepted.
func TestValidatePayloadTolerantSyntax(t *testing.T) {
	path := writeFile(t, "payload.json", `{
  // hand-edited payload
  "form": [
    {"question": "Pick one", "answer": [], "type": "radio", "options": ['A', 'B'],},
  ],
}`)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--payload", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
}

// TestValidatePayloadReportsIssues verifies model-level problems surface as
// a failure.
func TestValidatePayloadReportsIssues(t *testing.T) {
	path := writeFile(t, "payload.json", `{
  "form": [
    {"question": "Pick one", "answer": [], "type": "radio", "options": ["A"],
     "quota": {"condition": "!=", "value": 2, "meetRequirement": true}}
  ]
}`)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--payload", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected failure, got %d: %s", code, stdout.String())
	}
	if !strings.Contains(stderr.String(), "Validation failed") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

// TestValidateConfigOK verifies a config file validates through the same
// command.
func TestValidateConfigOK(t *testing.T) {
	path := writeFile(t, "formedit.yaml", "version: 1\n")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--config", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Config OK") {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}

// TestValidateRequiresExactlyOneInput verifies the flags are mutually
// exclusive and one is required.
func TestValidateRequiresExactlyOneInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if code := Run([]string{"validate", "--payload", "a", "--config", "b"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
