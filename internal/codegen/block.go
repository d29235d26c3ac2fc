package codegen

import "strings"

// Block is an embedded payload block located inside a code sample.
type Block struct {
	Text  string
	Start int
	End   int // exclusive
}

// ExtractBlock locates the single brace-delimited data block that follows
// the anchor phrase. From the first opening brace after the anchor it scans
// forward tracking brace depth, skipping braces inside single- or
// double-quoted strings (backslash-escape aware) so user-authored string
// content cannot terminate the scan early. Returns false when the anchor or
// a balanced closing brace is missing; callers treat that as "no block
// present", not an error.
func ExtractBlock(src, anchor string) (Block, bool) {
	if anchor == "" {
		return Block{}, false
	}
	anchorAt := strings.Index(src, anchor)
	if anchorAt < 0 {
		return Block{}, false
	}
	offset := strings.IndexByte(src[anchorAt+len(anchor):], '{')
	if offset < 0 {
		return Block{}, false
	}
	start := anchorAt + len(anchor) + offset

	depth := 0
	var quote byte
	escaped := false
	for i := start; i < len(src); i++ {
		ch := src[i]
		if quote != 0 {
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			quote = ch
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end := i + 1
				return Block{Text: src[start:end], Start: start, End: end}, true
			}
		}
	}
	return Block{}, false
}

// ReplaceBlock swaps the embedded block for newBlock, preserving every byte
// outside the block span. When the anchor exists but no balanced block
// follows it, the dangling text from the broken block onward is replaced
// outright; appending a second anchor there would leave extraction stuck on
// the first, unbalanced one. When the anchor is absent a fresh anchor and
// block are appended, so replacement is total where extraction is partial.
func ReplaceBlock(src, anchor, newBlock string) string {
	if block, ok := ExtractBlock(src, anchor); ok {
		return src[:block.Start] + newBlock + src[block.End:]
	}
	if anchor != "" {
		if anchorAt := strings.Index(src, anchor); anchorAt >= 0 {
			start := anchorAt + len(anchor)
			if offset := strings.IndexByte(src[start:], '{'); offset >= 0 {
				start += offset
			}
			return src[:start] + newBlock + "\n"
		}
	}
	return src + "\n\n" + anchor + newBlock + "\n"
}
