package layout

import (
	"errors"
	"testing"

	"github.com/tsawler/verbatim/model"
)

func makeDoc(pages ...[]string) *model.Document {
	doc := model.NewDocument()
	for _, lines := range pages {
		doc.AddPage(model.NewPage(lines))
	}
	return doc
}

func TestStripper_FirstPageHeader(t *testing.T) {
	stripper := NewStripper()

	doc := makeDoc([]string{
		"United Nations",
		"Official Record",
		"President: Mr. Larsen",
		"The President: I declare open the meeting",
		"Mr. Adeyemi (Nigeria): Thank you",
	})

	result, err := stripper.Strip(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := result.Document.Pages[0].Lines
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving lines, got %d: %v", len(got), got)
	}

	if got[0] != "The President: I declare open the meeting" {
		t.Errorf("expected content to start after the anchor, got %q", got[0])
	}
}

func TestStripper_HeaderNotFound(t *testing.T) {
	stripper := NewStripper()

	doc := makeDoc([]string{"no anchor here", "just content"})

	_, err := stripper.Strip(doc)
	if !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("expected ErrHeaderNotFound, got %v", err)
	}
}

func TestStripper_EmptyDocument(t *testing.T) {
	stripper := NewStripper()

	if _, err := stripper.Strip(model.NewDocument()); !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("expected ErrHeaderNotFound for empty document, got %v", err)
	}

	if _, err := stripper.Strip(nil); !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("expected ErrHeaderNotFound for nil document, got %v", err)
	}
}

func TestStripper_FirstPageFooter(t *testing.T) {
	stripper := NewStripper()

	doc := makeDoc([]string{
		"President: Mr. Larsen",
		"The President: I declare open the meeting",
		"This record contains the text of speeches delivered in English",
		"and of the interpretation of speeches delivered in other languages.",
	})

	result, err := stripper.Strip(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.FooterFound {
		t.Error("expected footer fingerprint to be found")
	}

	got := result.Document.Pages[0].Lines
	if len(got) != 1 || got[0] != "The President: I declare open the meeting" {
		t.Errorf("expected footer block dropped, got %v", got)
	}
}

func TestStripper_FooterMissingIsNotFatal(t *testing.T) {
	stripper := NewStripper()

	doc := makeDoc([]string{
		"President: Mr. Larsen",
		"The President: I declare open the meeting",
	})

	result, err := stripper.Strip(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FooterFound {
		t.Error("expected FooterFound to be false")
	}

	if len(result.Document.Pages[0].Lines) != 1 {
		t.Errorf("expected content preserved, got %v", result.Document.Pages[0].Lines)
	}
}

func TestStripper_RunningHeaders(t *testing.T) {
	stripper := NewStripper()

	doc := makeDoc(
		[]string{"President: Mr. Larsen", "first page content"},
		[]string{"S/PV.8000 (Resumption 1)", "second page content"},
		[]string{"S/PV.8000 (Resumption 1)", "third page content"},
	)

	result, err := stripper.Strip(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, page := range result.Document.Pages[1:] {
		if len(page.Lines) != 1 {
			t.Fatalf("page %d: expected 1 surviving line, got %v", i+2, page.Lines)
		}
		if page.Lines[0] == "S/PV.8000 (Resumption 1)" {
			t.Errorf("page %d: running header not dropped", i+2)
		}
	}
}

func TestStripper_RunningHeaderOnShortPage(t *testing.T) {
	stripper := NewStripper()

	doc := makeDoc(
		[]string{"President: Mr. Larsen", "content"},
		[]string{},
	)

	result, err := stripper.Strip(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Document.Pages[1].Lines) != 0 {
		t.Errorf("expected empty second page, got %v", result.Document.Pages[1].Lines)
	}
}

func TestStripper_InputNotMutated(t *testing.T) {
	stripper := NewStripper()

	doc := makeDoc([]string{"President: Mr. Larsen", "content"})
	before := len(doc.Pages[0].Lines)

	if _, err := stripper.Strip(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Pages[0].Lines) != before {
		t.Error("input document was mutated")
	}
}

func TestNewStripperWithConfig_BadPattern(t *testing.T) {
	config := DefaultStripConfig()
	config.AnchorPattern = "("

	if _, err := NewStripperWithConfig(config); err == nil {
		t.Error("expected error for invalid anchor pattern")
	}
}

func TestStripper_CustomAnchor(t *testing.T) {
	config := DefaultStripConfig()
	config.AnchorPattern = `^Presidente:`

	stripper, err := NewStripperWithConfig(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := makeDoc([]string{"Presidente: Sr. Gomez", "contenido"})

	result, err := stripper.Strip(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Document.Pages[0].Lines) != 1 {
		t.Errorf("expected 1 surviving line, got %v", result.Document.Pages[0].Lines)
	}
}
