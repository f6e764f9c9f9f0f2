package markdown

import (
	"fmt"
	"strings"
)

// Managed blocks let generated content live inside hand-edited
// markdown. Everything between the markers is replaced on rewrite;
// everything outside is preserved verbatim.

func blockMarkers(name string) (start, end string) {
	start = fmt.Sprintf("<!-- courseforge:%s:start -->", name)
	end = fmt.Sprintf("<!-- courseforge:%s:end -->", name)
	return start, end
}

// ReplaceManagedBlock swaps the named block's content, appending a new
// block at the end of the document when none exists yet.
func ReplaceManagedBlock(doc, name, content string) string {
	start, end := blockMarkers(name)
	block := start + "\n" + strings.TrimRight(content, "\n") + "\n" + end

	startIdx := strings.Index(doc, start)
	if startIdx < 0 {
		if doc != "" && !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		if doc != "" {
			doc += "\n"
		}
		return doc + block + "\n"
	}
	endIdx := strings.Index(doc[startIdx:], end)
	if endIdx < 0 {
		return doc[:startIdx] + block + "\n"
	}
	tail := doc[startIdx+endIdx+len(end):]
	return doc[:startIdx] + block + tail
}
