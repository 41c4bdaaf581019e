package ui

import (
	"strings"
	"testing"
)

func TestTruncateTableCellKeepsShortValues(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateTableCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellCountsWideRunes(t *testing.T) {
	value := strings.Repeat("日", tableCellMaxWidth)

	got := TruncateTableCell(value)

	if width := displayWidth(got); width > tableCellMaxWidth {
		t.Fatalf("expected at most %d cells, got %d in %q", tableCellMaxWidth, width, got)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	headers := []string{"COL"}
	rows := [][]string{{"Hello\nWorld\r\nAgain\tTab"}}

	got := FormatTable(headers, rows)

	expected := "COL\nHello World Again Tab\n"
	if got != expected {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestFormatTableAlignsWideRunes(t *testing.T) {
	builder := NewTableBuilder([]string{"PRI", "TEXT"}, 2)
	builder.AddRow([]string{"高", "牛乳"})
	builder.AddRow([]string{"low", "milk"})

	got := builder.String()

	expected := "PRI  TEXT\n高   牛乳\nlow  milk\n"
	if got != expected {
		t.Fatalf("expected aligned table, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("日本", 6); got != "日本  " {
		t.Fatalf("expected two spaces of padding, got %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Fatalf("expected value unchanged, got %q", got)
	}
}
