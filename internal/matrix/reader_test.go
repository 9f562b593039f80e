package matrix

import (
	"strings"
	"testing"
)

func TestRead_oneBased(t *testing.T) {
	in := "1 0.5 3 2.0\n2 1.0\n"
	m, err := Read(strings.NewReader(in), OneBased)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 2 || m.Features() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", m.Rows(), m.Features())
	}
	row := m.Row(0)
	if row[0].Feature != 0 || row[0].Value != 0.5 {
		t.Errorf("row 0 entry 0 = %+v, want feature 0 value 0.5", row[0])
	}
	if row[1].Feature != 2 || row[1].Value != 2.0 {
		t.Errorf("row 0 entry 1 = %+v, want feature 2 value 2.0", row[1])
	}
}

func TestRead_oddTokenCountIsFatal(t *testing.T) {
	in := "1 0.5\n2 1.0 3\n"
	_, err := Read(strings.NewReader(in), OneBased)
	if err == nil {
		t.Fatal("odd token count accepted")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error %q does not name the offending row", err)
	}
}

func TestRead_rejectsFeatureBelowBase(t *testing.T) {
	if _, err := Read(strings.NewReader("0 1.0\n"), OneBased); err == nil {
		t.Error("feature id 0 accepted under 1-based indexing")
	}
}

func TestRead_blankLineIsEmptyRow(t *testing.T) {
	m, err := Read(strings.NewReader("0 1.0\n\n1 2.0\n"), ZeroBased)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 3 {
		t.Fatalf("rows = %d, want 3", m.Rows())
	}
	if len(m.Row(1)) != 0 {
		t.Error("blank line should parse as an empty row")
	}
}

func TestRead_badNumbersAreFatal(t *testing.T) {
	if _, err := Read(strings.NewReader("x 1.0\n"), ZeroBased); err == nil {
		t.Error("non-numeric feature id accepted")
	}
	if _, err := Read(strings.NewReader("0 abc\n"), ZeroBased); err == nil {
		t.Error("non-numeric value accepted")
	}
}
