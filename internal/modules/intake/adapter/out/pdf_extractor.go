package out

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"rsc.io/pdf"
)

// PDFExtractor recovers plain text from PDF outlines. Text fragments
// are regrouped into lines by their vertical position, top to bottom.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		writePageText(&b, page.Content().Text)
	}
	return b.String(), nil
}

func writePageText(b *strings.Builder, texts []pdf.Text) {
	if len(texts) == 0 {
		return
	}
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	lineY := texts[0].Y
	for _, t := range texts {
		if t.Y != lineY {
			b.WriteByte('\n')
			lineY = t.Y
		}
		b.WriteString(t.S)
	}
	b.WriteByte('\n')
}
