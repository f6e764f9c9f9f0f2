package markdown

import (
	"strings"
	"testing"
)

func TestReplaceManagedBlockAppendsWhenMissing(t *testing.T) {
	t.Parallel()

	doc := ReplaceManagedBlock("# Notes\n", "outline", "- Variables\n")
	want := "<!-- courseforge:outline:start -->\n- Variables\n<!-- courseforge:outline:end -->"
	if !strings.Contains(doc, want) {
		t.Fatalf("block not appended:\n%s", doc)
	}
	if !strings.HasPrefix(doc, "# Notes\n") {
		t.Fatalf("existing body was disturbed:\n%s", doc)
	}
}

func TestReplaceManagedBlockPreservesSurroundings(t *testing.T) {
	t.Parallel()

	doc := "# Notes\n\nkeep this\n\n" +
		"<!-- courseforge:outline:start -->\nold\n<!-- courseforge:outline:end -->\n\nand this\n"
	updated := ReplaceManagedBlock(doc, "outline", "new\n")

	if strings.Contains(updated, "old") {
		t.Fatalf("previous block content survived:\n%s", updated)
	}
	want := "<!-- courseforge:outline:start -->\nnew\n<!-- courseforge:outline:end -->"
	if !strings.Contains(updated, want) {
		t.Fatalf("block was not rewritten:\n%s", updated)
	}
	for _, keep := range []string{"keep this", "and this"} {
		if !strings.Contains(updated, keep) {
			t.Fatalf("lost surrounding text %q:\n%s", keep, updated)
		}
	}
}

func TestReplaceManagedBlockIsIdempotent(t *testing.T) {
	t.Parallel()

	once := ReplaceManagedBlock("# Notes\n", "outline", "- A\n")
	twice := ReplaceManagedBlock(once, "outline", "- A\n")
	if once != twice {
		t.Fatalf("second replace changed the document:\n%s\nvs\n%s", once, twice)
	}
}
