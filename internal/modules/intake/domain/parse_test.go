package domain

import (
	"errors"
	"testing"

	apperrors "courseforge/internal/platform/errors"
)

const structuredDoc = `
Some preamble the teacher wrote.

TITLE: Variables and Types
OUTCOMES: declare variables; explain zero values

TITLE: Control Flow
OUTCOMES: write loops
OUTCOMES: use switch statements
`

const bulletDoc = `
# Course outline

## Fundamentals
- Variables and Types: declare variables and explain zero values
* Control Flow
- Functions
`

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	if got := DetectFormat(structuredDoc); got != FormatStructured {
		t.Fatalf("DetectFormat = %q, want structured", got)
	}
	if got := DetectFormat(bulletDoc); got != FormatBullets {
		t.Fatalf("DetectFormat = %q, want bullets", got)
	}
}

func TestParseStructured(t *testing.T) {
	t.Parallel()

	lessons, err := ParseStructured(structuredDoc)
	if err != nil {
		t.Fatalf("ParseStructured: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("parsed %d lessons, want 2", len(lessons))
	}
	if lessons[0].Title != "Variables and Types" {
		t.Fatalf("title = %q", lessons[0].Title)
	}
	if lessons[0].Description != "declare variables; explain zero values" {
		t.Fatalf("description = %q", lessons[0].Description)
	}
	if lessons[1].Description != "write loops; use switch statements" {
		t.Fatalf("repeated OUTCOMES did not join: %q", lessons[1].Description)
	}
}

func TestParseStructuredOutcomesBeforeTitle(t *testing.T) {
	t.Parallel()

	_, err := ParseStructured("OUTCOMES: dangling\n")
	if !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestParseBullets(t *testing.T) {
	t.Parallel()

	lessons, err := ParseBullets(bulletDoc)
	if err != nil {
		t.Fatalf("ParseBullets: %v", err)
	}
	want := []Lesson{
		{Title: "Variables and Types", Description: "declare variables and explain zero values"},
		{Title: "Control Flow"},
		{Title: "Functions"},
	}
	if len(lessons) != len(want) {
		t.Fatalf("parsed %d lessons, want %d", len(lessons), len(want))
	}
	for i := range want {
		if lessons[i] != want[i] {
			t.Fatalf("lesson %d = %+v, want %+v", i, lessons[i], want[i])
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	if _, err := Parse("just prose, no lessons"); !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}
