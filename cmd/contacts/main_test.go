/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suparena/contactstore/errors"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	body := `
logging:
  level: warn
addressbooks:
  - key: personal
    name: Personal
    backend: vcf
    path: ` + filepath.Join(dir, "personal.vcf") + `
  - key: archive
    name: Archive
    backend: sqlite
    dsn: sqlite:` + filepath.Join(dir, "archive.db") + `
    permissions: [read]
`
	path := filepath.Join(dir, "contacts.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var rows []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var row map[string]any
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestBooksCommand(t *testing.T) {
	out, err := run(t, writeConfig(t), "books")
	if err != nil {
		t.Fatalf("books failed: %v", err)
	}
	rows := decodeLines(t, out)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 books, got %v", rows)
	}
	if rows[0]["key"] != "personal" || rows[1]["key"] != "archive" {
		t.Errorf("Expected configuration order, got %v", rows)
	}
	if rows[1]["permissions"] != "read" {
		t.Errorf("Expected read-only archive, got %v", rows[1]["permissions"])
	}
}

func TestPutSearchDelete(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "put", "--book", "personal", "FN=Jane Doe", "EMAIL=jane@example.com", "EMAIL=jd@example.com")
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	saved := decodeLines(t, out)[0]
	id, _ := saved["id"].(string)
	if id == "" {
		t.Fatalf("Expected an assigned id, got %v", saved)
	}
	if emails, ok := saved["EMAIL"].([]any); !ok || len(emails) != 2 {
		t.Errorf("Expected two emails, got %v", saved["EMAIL"])
	}

	out, err = run(t, cfg, "put", "--book", "personal", "--id", id, "FN=Jane Q Doe")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := decodeLines(t, out)[0]["FN"]; got != "Jane Q Doe" {
		t.Errorf("Expected updated name, got %v", got)
	}

	out, err = run(t, cfg, "search", "--prop", "FN", "jane q")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	rows := decodeLines(t, out)
	if len(rows) != 1 || rows[0]["id"] != id {
		t.Errorf("Expected the updated contact, got %v", rows)
	}

	out, err = run(t, cfg, "delete", "--book", "personal", id)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted := decodeLines(t, out)[0]["deleted"]; deleted != true {
		t.Errorf("Expected deleted=true, got %v", deleted)
	}

	out, err = run(t, cfg, "search")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if rows := decodeLines(t, out); len(rows) != 0 {
		t.Errorf("Expected no contacts after delete, got %v", rows)
	}
}

func TestCommandErrors(t *testing.T) {
	cfg := writeConfig(t)

	if _, err := run(t, cfg, "put", "--book", "archive", "FN=X"); !errors.IsPermissionDenied(err) {
		t.Errorf("Expected permission denied, got %v", err)
	}
	if _, err := run(t, cfg, "delete", "--book", "nope", "x"); !errors.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
	if _, err := run(t, cfg, "put", "--book", "personal", "novalue"); err == nil {
		t.Error("Expected an error for a malformed field")
	}
	if _, err := run(t, filepath.Join(t.TempDir(), "missing.yaml"), "books"); err == nil {
		t.Error("Expected an error for a missing configuration file")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "unused.yaml", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "contacts version ") {
		t.Errorf("Unexpected version output %q", out)
	}
}
