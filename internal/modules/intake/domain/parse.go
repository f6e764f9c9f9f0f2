package domain

import (
	"fmt"
	"strings"

	apperrors "courseforge/internal/platform/errors"
)

// Format identifies how an intake document lists its lessons.
type Format string

const (
	// FormatStructured uses TITLE:/OUTCOMES: line pairs.
	FormatStructured Format = "structured"
	// FormatBullets uses one markdown bullet per lesson.
	FormatBullets Format = "bullets"
)

// DetectFormat sniffs the document body. Structured markers win over
// bullets when both appear.
func DetectFormat(text string) Format {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "TITLE:") {
			return FormatStructured
		}
	}
	return FormatBullets
}

// Parse dispatches on the detected format.
func Parse(text string) ([]Lesson, error) {
	switch DetectFormat(text) {
	case FormatStructured:
		return ParseStructured(text)
	default:
		return ParseBullets(text)
	}
}

// ParseStructured reads TITLE:/OUTCOMES: pairs. A TITLE line opens a
// lesson; OUTCOMES lines attach to the most recent one. Other lines
// are ignored.
func ParseStructured(text string) ([]Lesson, error) {
	var lessons []Lesson
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "TITLE:"):
			title := strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))
			if title == "" {
				continue
			}
			lessons = append(lessons, Lesson{Title: title})
		case strings.HasPrefix(line, "OUTCOMES:"):
			if len(lessons) == 0 {
				return nil, fmt.Errorf("%w: OUTCOMES line before any TITLE", apperrors.ErrInvalidConfiguration)
			}
			outcomes := strings.TrimSpace(strings.TrimPrefix(line, "OUTCOMES:"))
			last := &lessons[len(lessons)-1]
			if last.Description == "" {
				last.Description = outcomes
			} else {
				last.Description += "; " + outcomes
			}
		}
	}
	if len(lessons) == 0 {
		return nil, fmt.Errorf("%w: no TITLE lines found", apperrors.ErrInvalidConfiguration)
	}
	return lessons, nil
}

// ParseBullets reads one lesson per markdown bullet. A "Title: detail"
// bullet splits into title and description. Headings and prose between
// bullets are ignored.
func ParseBullets(text string) ([]Lesson, error) {
	var lessons []Lesson
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		var body string
		switch {
		case strings.HasPrefix(line, "- "):
			body = line[2:]
		case strings.HasPrefix(line, "* "):
			body = line[2:]
		default:
			continue
		}
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}
		lesson := Lesson{Title: body}
		if idx := strings.Index(body, ": "); idx > 0 {
			lesson.Title = strings.TrimSpace(body[:idx])
			lesson.Description = strings.TrimSpace(body[idx+2:])
		}
		lessons = append(lessons, lesson)
	}
	if len(lessons) == 0 {
		return nil, fmt.Errorf("%w: no lesson bullets found", apperrors.ErrInvalidConfiguration)
	}
	return lessons, nil
}
