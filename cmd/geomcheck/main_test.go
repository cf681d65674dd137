package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeScript writes a domain script to a temp file and returns its path.
func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "domain.lisp")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// runCommand executes the root command with args and returns stdout,
// stderr, and the execution error.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

func TestDescribeValidScript(t *testing.T) {
	path := writeScript(t, `(domain 0.0 1.0 -1.0 1.0 4.0 5.5)`)

	stdout, _, err := runCommand(t, "describe", path)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}

	for _, want := range []string{
		"x [0, 1]",
		"LX=1 LY=2 LZ=1.5",
		"volume:     3",
		"center:     (0.5, 0, 4.75)",
		"x_max x_min y_max y_min z_max z_min",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("describe output missing %q:\n%s", want, stdout)
		}
	}
}

func TestCheckValidScript(t *testing.T) {
	path := writeScript(t, `(domain 0 10 0 5 0 2)`)

	stdout, _, err := runCommand(t, "check", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(stdout, "ok:") {
		t.Errorf("check output missing ok marker:\n%s", stdout)
	}
}

func TestCheckInvalidScript(t *testing.T) {
	path := writeScript(t, `(domain 1.0 0.0 -1.0 1.0 4.0 5.5)`)

	_, stderr, err := runCommand(t, "check", path)
	if err == nil {
		t.Fatal("check succeeded for reversed x extents")
	}
	if !strings.Contains(stderr, "must be less than") {
		t.Errorf("check stderr missing extent violation:\n%s", stderr)
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, _, err := runCommand(t, "check", filepath.Join(t.TempDir(), "absent.lisp"))
	if err == nil {
		t.Fatal("check succeeded for a missing script file")
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(stdout, Version) {
		t.Errorf("version output missing %q:\n%s", Version, stdout)
	}
}
