package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeTestConfig(t, `
str: "bar"
list: [1, 2, 3]
`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{
		writeTestConfig(t, `str: "first"`),
		writeTestConfig(t, `str: "second"`),
	}, testSchema)

	if v := First[string](loader, "str"); v != "first" {
		t.Fatalf("got %q", v)
	}
}

func TestLoaderSchemaViolation(t *testing.T) {
	loader := NewLoader([]string{
		writeTestConfig(t, `unknown_field: true`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err == nil {
		t.Fatal("expected schema violation")
	}
}

func TestFirstMissing(t *testing.T) {
	loader := NewLoader(nil, "")
	if v := First[int](loader, "nope"); v != 0 {
		t.Fatalf("got %v", v)
	}
}
