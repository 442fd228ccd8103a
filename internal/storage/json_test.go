package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const fixture = `{
  "timestamp": "2026-08-25T10:00:00Z",
  "perl_tests": [
    {
      "test_name": "Test--https.px",
      "passed": true,
      "execution_time": 1.5
    },
    {
      "test_name": "Test--metalink.px",
      "passed": false,
      "failure_category": "missing_feature",
      "error_message": "unexpected option --input-metalink",
      "stderr": "metalink not supported",
      "exit_code": 2,
      "execution_time": 0.25,
      "description": "Metalink input handling"
    }
  ],
  "python_tests": [
    {
      "test_name": "test_timeout",
      "passed": false,
      "failure_category": "timeout"
    }
  ],
  "extra_field": {"ignored": true}
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-results.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestJSONStorage_Load(t *testing.T) {
	st := NewJSONStorage()

	results, err := st.Load(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if results.Timestamp != "2026-08-25T10:00:00Z" {
		t.Errorf("unexpected timestamp %q", results.Timestamp)
	}
	if len(results.PerlTests) != 2 {
		t.Fatalf("expected 2 perl tests, got %d", len(results.PerlTests))
	}
	if len(results.PythonTests) != 1 {
		t.Fatalf("expected 1 python test, got %d", len(results.PythonTests))
	}

	failed := results.PerlTests[1]
	if failed.TestName != "Test--metalink.px" || failed.Passed {
		t.Errorf("unexpected failed record: %+v", failed)
	}
	if failed.ExitCode == nil || *failed.ExitCode != 2 {
		t.Errorf("expected exit code 2, got %v", failed.ExitCode)
	}

	// Absent optional fields default to zero values.
	timeout := results.PythonTests[0]
	if timeout.ExitCode != nil {
		t.Errorf("absent exit code should stay nil, got %v", timeout.ExitCode)
	}
	if timeout.ExecutionTime != 0 || timeout.Stderr != "" || timeout.Description != "" {
		t.Errorf("absent fields should default to zero: %+v", timeout)
	}
}

func TestJSONStorage_Load_NotFound(t *testing.T) {
	st := NewJSONStorage()

	_, err := st.Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
}

func TestJSONStorage_Load_Malformed(t *testing.T) {
	st := NewJSONStorage()

	_, err := st.Load(writeFixture(t, "{not json"))
	if err == nil {
		t.Error("expected parse error")
	}
	if errors.Is(err, ErrInputNotFound) {
		t.Error("parse error must not report not-found")
	}
}
