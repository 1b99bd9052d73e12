package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const catalogTOML = `
[[types]]
uri = "urn:t"
name = "Node"
sequenced = true

[[types.properties]]
name = "label"
type = "xsd:string"

[[types.properties]]
name = "peer"
type = "Node"

[object]
type = "urn:t#Node"
id = "root"

[object.properties]
label = "a<b"

[object.properties.peer]
ref = "root"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTypesCommand(t *testing.T) {
	path := writeFile(t, "catalog.toml", catalogTOML)
	code, out, errOut := execute(t, "types", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut)
	}
	want := "Type: urn:t#Node isOpen: false isSequenced: true\n" +
		"  Property: label type: commonj.sdo#String isMany: false\n" +
		"  Property: peer type: urn:t#Node isMany: false\n"
	if out != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", out, want)
	}
}

func TestObjectCommand(t *testing.T) {
	path := writeFile(t, "catalog.toml", catalogTOML)

	tests := []struct {
		name     string
		args     []string
		code     int
		contains []string
	}{
		{
			name:     "containment only",
			args:     []string{"object", path},
			contains: []string{"Property Value: a<b\n", "Reference: urn:t#Node\n"},
		},
		{
			name:     "follow references",
			args:     []string{"object", "--cycle-policy=follow", path},
			contains: []string{"Cycle: urn:t#Node\n"},
		},
		{
			name:     "escaped",
			args:     []string{"object", "--escape", path},
			contains: []string{"Property Value: a&lt;b\n"},
		},
		{
			name: "reject cycles",
			args: []string{"object", "--cycle-policy=reject", path},
			code: 1,
		},
		{
			name: "bad policy",
			args: []string{"object", "--cycle-policy=sometimes", path},
			code: 1,
		},
		{
			name: "missing file",
			args: []string{"object", filepath.Join(t.TempDir(), "absent.toml")},
			code: 1,
		},
		{
			name: "missing argument",
			args: []string{"object"},
			code: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := execute(t, tt.args...)
			if code != tt.code {
				t.Fatalf("exit code = %d, want %d, stderr = %s", code, tt.code, errOut)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Fatalf("stdout missing %q:\n%s", s, out)
				}
			}
			if tt.code != 0 && errOut == "" {
				t.Fatal("failure not logged")
			}
		})
	}
}

func TestObjectCommandWithoutObject(t *testing.T) {
	path := writeFile(t, "types.toml", "[[types]]\nuri = \"u\"\nname = \"T\"\n")
	code, _, errOut := execute(t, "object", path)
	if code != 1 || !strings.Contains(errOut, "no [object] table") {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	path := writeFile(t, "catalog.toml", catalogTOML)
	cfg := writeFile(t, "sdodump.toml", "cycle_policy = \"follow\"\n")

	code, out, errOut := execute(t, "object", "--config", cfg, path)
	if code != 0 || !strings.Contains(out, "Cycle: urn:t#Node") {
		t.Fatalf("config file not applied: code %d, stdout %s, stderr %s", code, out, errOut)
	}

	t.Setenv("SDODUMP_CYCLE_POLICY", "reject")
	if code, _, _ := execute(t, "object", path); code != 1 {
		t.Fatalf("env policy not applied: code %d", code)
	}
	code, _, errOut = execute(t, "object", "--cycle-policy=containment", path)
	if code != 0 {
		t.Fatalf("flag did not override env: code %d, stderr %s", code, errOut)
	}
}

func TestNameCommands(t *testing.T) {
	code, out, errOut := execute(t, "xsd", "int", "unsignedLong", "hexBinary", "mystery")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := "int Integer\nunsignedLong Long\nhexBinary Bytes\nmystery String\n"
	if out != want {
		t.Fatalf("xsd stdout = %q, want %q", out, want)
	}
	if !strings.Contains(errOut, "mystery") {
		t.Fatalf("unknown name not warned: %q", errOut)
	}

	code, out, _ = execute(t, "sdo", "Long", "URI", "")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if want := "Long unsignedLong\nURI anyURI\n string\n"; out != want {
		t.Fatalf("sdo stdout = %q, want %q", out, want)
	}

	if code, _, _ := execute(t, "xsd"); code != 2 {
		t.Fatalf("missing names exit code = %d, want 2", code)
	}
}

func TestUnknownCommand(t *testing.T) {
	if code, _, _ := execute(t, "bogus"); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestLogLevelFlag(t *testing.T) {
	path := writeFile(t, "catalog.toml", catalogTOML)
	code, _, errOut := execute(t, "types", "--log-level=debug", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %s", code, errOut)
	}
	if !strings.Contains(errOut, "catalog loaded") {
		t.Fatalf("debug log missing: %q", errOut)
	}
	if code, _, _ := execute(t, "types", "--log-level=loud", path); code != 1 {
		t.Fatalf("bad level exit code = %d, want 1", code)
	}
}
