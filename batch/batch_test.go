package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tsawler/verbatim"
)

const goodRecord = `United Nations
President: Mr. Larsen
The President: I declare open the meeting
Mr. Adeyemi (Nigeria): Thank you, Mr. President.
We welcome this opportunity.
`

const anchorlessRecord = `No anchor anywhere
just content lines
`

func writeRecord(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcess_OrderedResults(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeRecord(t, dir, "a.txt", goodRecord),
		writeRecord(t, dir, "b.txt", goodRecord),
		writeRecord(t, dir, "c.txt", goodRecord),
	}

	results := Process(context.Background(), paths, Options{Workers: 2})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d: expected path %s, got %s", i, paths[i], r.Path)
		}
		if r.Err != nil {
			t.Errorf("result %d: unexpected error: %v", i, r.Err)
		}
		if len(r.Speeches) != 1 {
			t.Errorf("result %d: expected 1 speech, got %d", i, len(r.Speeches))
		}
	}
}

func TestProcess_FailureIsolation(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeRecord(t, dir, "good.txt", goodRecord),
		writeRecord(t, dir, "bad.txt", anchorlessRecord),
		writeRecord(t, dir, "also-good.txt", goodRecord),
	}

	results := Process(context.Background(), paths, Options{Workers: 3})

	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("healthy documents must not be affected: %v, %v", results[0].Err, results[2].Err)
	}

	if !errors.Is(results[1].Err, verbatim.ErrHeaderNotFound) {
		t.Errorf("expected ErrHeaderNotFound for anchorless document, got %v", results[1].Err)
	}
	if results[1].Speeches != nil {
		t.Error("failed document must produce no output")
	}
}

func TestProcess_MissingFile(t *testing.T) {
	results := Process(context.Background(), []string{"/nonexistent/record.txt"}, Options{})

	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected an error result, got %+v", results)
	}
}

func TestProcess_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	paths := []string{writeRecord(t, dir, "a.txt", goodRecord)}

	results := Process(ctx, paths, Options{Workers: 1})

	// Either the dispatch was stopped or the document still completed;
	// both are acceptable, but a stopped dispatch must record the cause.
	if results[0].Err != nil && !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results[0].Err)
	}
}

func TestProcess_Configure(t *testing.T) {
	dir := t.TempDir()
	record := `United Nations
Presidente: Sr. Gomez
Mr. Adeyemi (Nigeria): Thank you.
`
	paths := []string{writeRecord(t, dir, "a.txt", record)}

	results := Process(context.Background(), paths, Options{
		Configure: func(e *verbatim.Extractor) *verbatim.Extractor {
			return e.AnchorPattern(`^Presidente:`)
		},
	})

	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	if len(results[0].Speeches) != 1 {
		t.Errorf("expected 1 speech, got %d", len(results[0].Speeches))
	}
}

func TestProcess_Timeout(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeRecord(t, dir, "a.txt", goodRecord)}

	// A generous timeout must not interfere with a normal document.
	results := Process(context.Background(), paths, Options{Timeout: 30 * time.Second})
	if results[0].Err != nil {
		t.Errorf("unexpected error under timeout: %v", results[0].Err)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	results := Process(context.Background(), nil, Options{})
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
