package richdoc

import "strings"

var frontMatterDelimiters = []string{"---", "+++", ";;;"}

// stripFrontMatter removes a YAML (---), TOML (+++) or JSON (;;;) front
// matter block from the start of src. The block is only stripped when it
// is closed and its first line looks like metadata.
func stripFrontMatter(src string) string {
	open, next, ok := nextLine(src, 0)
	if !ok {
		return src
	}
	delim, ok := openingDelimiter(open)
	if !ok {
		return src
	}
	second, _, ok := nextLine(src, next)
	if !ok || !metadataLikely(second) {
		return src
	}
	for idx := next; idx < len(src); {
		line, after, ok := nextLine(src, idx)
		if !ok {
			break
		}
		if strings.TrimSpace(line) == delim {
			return src[after:]
		}
		idx = after
	}
	return src
}

func nextLine(src string, start int) (string, int, bool) {
	if start >= len(src) {
		return "", start, false
	}
	i := strings.IndexByte(src[start:], '\n')
	if i < 0 {
		return strings.TrimSuffix(src[start:], "\r"), len(src), true
	}
	end := start + i
	return strings.TrimSuffix(src[start:end], "\r"), end + 1, true
}

func openingDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	for _, d := range frontMatterDelimiters {
		if trimmed == d {
			return d, true
		}
	}
	return "", false
}

func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
