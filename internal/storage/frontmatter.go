// Package storage reads TaskNotes markdown files from a vault directory:
// extracting YAML frontmatter, decoding it into Task records, and collecting
// all tasks under a root folder.
package storage

import "strings"

// frontmatterMarker delimits the metadata block. Matching is exact: a marker
// line with trailing whitespace does not count.
const frontmatterMarker = "---"

// ExtractFrontmatter isolates the frontmatter block from a note's content.
// The block starts with a first line equal to "---" and ends at the next line
// equal to "---"; the returned text excludes both marker lines. The second
// return value is false when the content has no complete block.
func ExtractFrontmatter(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || lines[0] != frontmatterMarker {
		return "", false
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] == frontmatterMarker {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}
