package markdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterDelim = []byte("---\n")

// SplitFrontmatter separates a markdown document into its yaml
// frontmatter block and body. Documents without frontmatter return
// nil metadata and the full input as body.
func SplitFrontmatter(doc []byte) (meta []byte, body []byte) {
	if !bytes.HasPrefix(doc, frontmatterDelim) {
		return nil, doc
	}
	rest := doc[len(frontmatterDelim):]
	end := bytes.Index(rest, frontmatterDelim)
	if end < 0 {
		return nil, doc
	}
	meta = rest[:end]
	body = rest[end+len(frontmatterDelim):]
	return meta, bytes.TrimLeft(body, "\n")
}

// RenderFrontmatter serializes meta as a yaml frontmatter block
// followed by body.
func RenderFrontmatter(meta any, body []byte) ([]byte, error) {
	encoded, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.Write(frontmatterDelim)
	buf.Write(encoded)
	buf.Write(frontmatterDelim)
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}

// DecodeFrontmatter unmarshals a frontmatter block into out.
func DecodeFrontmatter(meta []byte, out any) error {
	if err := yaml.Unmarshal(meta, out); err != nil {
		return fmt.Errorf("decode frontmatter: %w", err)
	}
	return nil
}
