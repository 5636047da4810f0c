package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func writeScenario(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write scenario.toml: %v", err)
	}
	return path
}

func newTestRoot(cmds ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{Use: "tszsolve"}
	root.PersistentFlags().String("color", "off", "")
	root.AddCommand(cmds...)
	return root
}

const pointScenario = `
[[type]]
name = "Point"
kind = "object"
  [[type.prop]]
  name = "x"
  type = "number"
  [[type.prop]]
  name = "y"
  type = "number"

[[type]]
name = "Point3D"
kind = "object"
  [[type.prop]]
  name = "x"
  type = "number"
  [[type.prop]]
  name = "y"
  type = "number"
  [[type.prop]]
  name = "z"
  type = "number"

[[check]]
name = "Point3D satisfies Point"
source = "Point3D"
target = "Point"
expect = true

[[check]]
name = "Point does not satisfy Point3D"
source = "Point"
target = "Point3D"
expect = false
`

func TestRunCheck_AllPass(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	path := writeScenario(t, pointScenario)
	root := newTestRoot(checkCmd)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"check", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("check: %v\noutput:\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "2 passed, 0 failed") {
		t.Errorf("check output = %q, want a summary of 2 passed, 0 failed", buf.String())
	}
}

func TestRunCheck_ReportsMismatch(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	mismatched := strings.Replace(pointScenario, `expect = false`, `expect = true`, 1)
	path := writeScenario(t, mismatched)
	root := newTestRoot(checkCmd)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"check", path})

	if err := root.Execute(); err == nil {
		t.Fatalf("check should report an error when a query's verdict doesn't match expect")
	}
	if !strings.Contains(buf.String(), "FAIL") {
		t.Errorf("check output = %q, want a FAIL line", buf.String())
	}
}

func TestRunDescribe_SingleName(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	path := writeScenario(t, pointScenario)
	root := newTestRoot(describeCmd)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"describe", path, "Point"})

	if err := root.Execute(); err != nil {
		t.Fatalf("describe: %v", err)
	}
	if !strings.Contains(buf.String(), "Point =") {
		t.Errorf("describe output = %q, want a line labeling Point", buf.String())
	}
	if strings.Contains(buf.String(), "Point3D =") {
		t.Errorf("describe output = %q, should not print Point3D when only Point was requested", buf.String())
	}
}

func TestRunDescribe_UnknownNameErrors(t *testing.T) {
	path := writeScenario(t, pointScenario)
	root := newTestRoot(describeCmd)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"describe", path, "NoSuchType"})

	if err := root.Execute(); err == nil {
		t.Fatalf("describe with an unknown type name should return an error")
	}
}
