package books

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/litbook/litbook/bookconfigs"
	"github.com/litbook/litbook/configs"
	"github.com/litbook/litbook/logs"
	"github.com/litbook/litbook/modes"
	"github.com/litbook/litbook/runners"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, provides ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Fork(provides...)
}

func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

const simpleDoc = `# Demo

` + "```starlark" + `
x = 2 + 2
print(x)
` + "```" + `

` + "```" + `
stale
` + "```" + `
`

func TestProcessDocument(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "demo.md", simpleDoc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
	})
	got := readDoc(t, path)
	want := strings.Replace(simpleDoc, "stale\n", "4\n", 1)
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestIdempotence(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "demo.md", simpleDoc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		first := readDoc(t, path)
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		if second := readDoc(t, path); second != first {
			t.Fatalf("not idempotent:\n%q\n%q", first, second)
		}
	})
}

func TestDeterminism(t *testing.T) {
	doc := `text

` + "```starlark" + `
print(randint(1, 1000000))
print(randint(1, 1000000))
` + "```" + `

` + "```" + `
` + "```" + `
`
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.md", doc)
	b := writeDoc(t, dir, "b.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), a); err != nil {
			t.Fatal(err)
		}
		if err := process(context.Background(), b); err != nil {
			t.Fatal(err)
		}
	})
	if got, want := readDoc(t, a), readDoc(t, b); got != want {
		t.Fatalf("diverged:\n%q\n%q", got, want)
	}
}

func TestNeverClobberOnFailure(t *testing.T) {
	doc := `# Broken

` + "```starlark" + `
print(undefined_name)
` + "```" + `

` + "```" + `
recorded output stays
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "broken.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		err := process(context.Background(), path)
		var failure runners.RuntimeFailure
		if !errors.As(err, &failure) {
			t.Fatalf("got %v", err)
		}
		if failure.Line != 4 {
			t.Fatalf("got line %d", failure.Line)
		}
	})
	if got := readDoc(t, path); got != doc {
		t.Fatalf("file modified: %q", got)
	}
}

func TestOrderSensitivity(t *testing.T) {
	// the definition below the use is invisible to it
	doc := `text

` + "```starlark" + `
print(value)
` + "```" + `

` + "```" + `
` + "```" + `

` + "```starlark" + `
value = 1
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "order.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		var failure runners.RuntimeFailure
		if err := process(context.Background(), path); !errors.As(err, &failure) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestTimeoutBound(t *testing.T) {
	doc := `text

` + "```starlark" + `
while True:
    pass
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "loop.md", doc)
	testScope(t,
		func() bookconfigs.TimeoutSeconds {
			return 1
		},
	).Call(func(
		process ProcessDocument,
	) {
		started := time.Now()
		err := process(context.Background(), path)
		if elapsed := time.Since(started); elapsed > 4*time.Second {
			t.Fatalf("took %v", elapsed)
		}
		var failure runners.TimeoutError
		if !errors.As(err, &failure) {
			t.Fatalf("got %v", err)
		}
	})
	if got := readDoc(t, path); got != doc {
		t.Fatal("file modified")
	}
}

func TestIsolatedOutput(t *testing.T) {
	doc := `text

` + "```starlark" + `
x = 1
` + "```" + `

` + "```starlark-isolated" + `
print("one-shot")
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "iso.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
	})
	if got := readDoc(t, path); !strings.Contains(got, "\none-shot\n") {
		t.Fatalf("got %q", got)
	}
}

func TestIsolatedDoesNotLeak(t *testing.T) {
	doc := `text

` + "```starlark-isolated" + `
z = 99
` + "```" + `

` + "```starlark" + `
print(z)
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "leak.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		var failure runners.RuntimeFailure
		if err := process(context.Background(), path); !errors.As(err, &failure) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestExpectException(t *testing.T) {
	doc := `text

` + "```starlark-exception" + `
fail("boom")
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "exc.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		rewritten := readDoc(t, path)
		if !strings.Contains(rewritten, "Error:") || !strings.Contains(rewritten, "boom") {
			t.Fatalf("got %q", rewritten)
		}

		// rendering is stable, a second pass changes nothing
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		if got := readDoc(t, path); got != rewritten {
			t.Fatalf("not stable:\n%q\n%q", rewritten, got)
		}
	})
}

func TestExpectExceptionNotRaised(t *testing.T) {
	doc := `text

` + "```starlark-exception" + `
x = 1
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "calm.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		var notRaised runners.ExpectedFailureNotRaised
		if err := process(context.Background(), path); !errors.As(err, &notRaised) {
			t.Fatalf("got %v", err)
		}
	})
	if got := readDoc(t, path); got != doc {
		t.Fatal("file modified")
	}
}

func TestExpectSyntaxError(t *testing.T) {
	doc := `text

` + "```starlark-syntax-error" + `
def broken(:
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "syn.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
	})
	if got := readDoc(t, path); !strings.Contains(got, "syntax error:") {
		t.Fatalf("got %q", got)
	}
}

func TestInclude(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "snippet.star", "z = 99\n")
	doc := `text

` + "```starlark-include:snippet.star" + `
` + "```" + `

` + "```starlark" + `
print(z)
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, dir, "inc.md", doc)
	testScope(t).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
	})
	rewritten := readDoc(t, path)
	if !strings.Contains(rewritten, "# snippet.star\nz = 99\n") {
		t.Fatalf("include body not refreshed: %q", rewritten)
	}
	if !strings.Contains(rewritten, "\n99\n") {
		t.Fatalf("included code did not run: %q", rewritten)
	}
}

func TestAlternateTrack(t *testing.T) {
	doc := `text

` + "```python" + `
piped through
` + "```" + `

` + "```" + `
` + "```" + `
`
	path := writeDoc(t, t.TempDir(), "alt.md", doc)
	testScope(t,
		func() bookconfigs.AltCommand {
			return bookconfigs.AltCommand{"tr", "a-z", "A-Z"}
		},
	).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
	})
	if got := readDoc(t, path); !strings.Contains(got, "\nPIPED THROUGH\n") {
		t.Fatalf("got %q", got)
	}
}

func TestDryRun(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "demo.md", simpleDoc)
	stdout := new(bytes.Buffer)
	testScope(t,
		func() bookconfigs.DryRun {
			return true
		},
		func() Stdout {
			return stdout
		},
	).Call(func(
		process ProcessDocument,
	) {
		if err := process(context.Background(), path); err != nil {
			t.Fatal(err)
		}
	})
	if got := readDoc(t, path); got != simpleDoc {
		t.Fatal("file modified in dry run")
	}
	if !strings.Contains(stdout.String(), "\n4\n") {
		t.Fatalf("got %q", stdout.String())
	}
}

func TestRunContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	bad := writeDoc(t, dir, "bad.md", `text

`+"```starlark"+`
print(nope)
`+"```"+`

`+"```"+`
`+"```"+`
`)
	good := writeDoc(t, dir, "good.md", simpleDoc)
	testScope(t).Call(func(
		run Run,
	) {
		err := run(context.Background(), []string{bad, good})
		if err == nil {
			t.Fatal("expected failure")
		}
		if !strings.Contains(err.Error(), "1 of 2") {
			t.Fatalf("got %v", err)
		}
	})
	if got := readDoc(t, good); !strings.Contains(got, "\n4\n") {
		t.Fatalf("good document skipped: %q", got)
	}
}
