package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.LeftColWidth != 8 {
		t.Errorf("expected default left_col_width 8, got %d", p.LeftColWidth)
	}
	if p.OverflowThreshold != 65 {
		t.Errorf("expected default overflow_threshold 65, got %d", p.OverflowThreshold)
	}
}

func TestParse_PartialOverlay(t *testing.T) {
	p, err := Parse([]byte("overflow_threshold: 72\nanchor_pattern: '^Presidente:'\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.OverflowThreshold != 72 {
		t.Errorf("expected overridden threshold 72, got %d", p.OverflowThreshold)
	}
	if p.LeftColWidth != 8 {
		t.Errorf("expected default left_col_width kept, got %d", p.LeftColWidth)
	}
	if p.AnchorPattern != "^Presidente:" {
		t.Errorf("expected anchor pattern set, got %q", p.AnchorPattern)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("left_col_width: [nope")); err == nil {
		t.Error("expected error for malformed YAML")
	}

	if _, err := Parse([]byte("left_col_width: -1")); err == nil {
		t.Error("expected error for non-positive left_col_width")
	}

	if _, err := Parse([]byte("overflow_threshold: 0")); err == nil {
		t.Error("expected error for non-positive overflow_threshold")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	if err := os.WriteFile(path, []byte("left_col_width: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.LeftColWidth != 12 {
		t.Errorf("expected 12, got %d", p.LeftColWidth)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
