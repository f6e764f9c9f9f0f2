package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"courseforge/internal/modules/intake/domain"
	"courseforge/internal/modules/intake/dto"
	"courseforge/internal/modules/intake/port/in"
	"courseforge/internal/modules/intake/port/out"
	apperrors "courseforge/internal/platform/errors"
)

// Intake reads outline documents and hands their lessons to the rest
// of the system.
type Intake struct {
	pdf out.TextExtractor
}

func NewIntake(pdf out.TextExtractor) *Intake {
	return &Intake{pdf: pdf}
}

var _ in.Intake = (*Intake)(nil)

func (i *Intake) ParseFile(ctx context.Context, path, format string) ([]dto.Lesson, error) {
	text, err := i.readText(ctx, path)
	if err != nil {
		return nil, err
	}
	lessons, err := parseAs(text, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	result := make([]dto.Lesson, 0, len(lessons))
	for _, l := range lessons {
		result = append(result, dto.Lesson{
			Title:       l.Title,
			Description: l.Description,
			Minutes:     l.Minutes,
		})
	}
	return result, nil
}

func parseAs(text, format string) ([]domain.Lesson, error) {
	switch domain.Format(format) {
	case domain.FormatStructured:
		return domain.ParseStructured(text)
	case domain.FormatBullets:
		return domain.ParseBullets(text)
	case "":
		return domain.Parse(text)
	default:
		return nil, fmt.Errorf("%w: unknown outline format %q", apperrors.ErrInvalidConfiguration, format)
	}
}

func (i *Intake) readText(ctx context.Context, path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return i.pdf.ExtractText(ctx, path)
	case ".md", ".txt", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read outline: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: unsupported outline format %q", apperrors.ErrInvalidConfiguration, ext)
	}
}
