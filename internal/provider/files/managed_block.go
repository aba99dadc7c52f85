package files

import (
	"fmt"
	"strings"
)

const (
	blockStartFmt = "# >>> rigup %s >>>"
	blockEndFmt   = "# <<< rigup %s <<<"
)

// readManagedBlock extracts the content between rigup block markers.
// Returns empty string when the block is absent or malformed.
func readManagedBlock(content, section string) string {
	start := fmt.Sprintf(blockStartFmt, section)
	end := fmt.Sprintf(blockEndFmt, section)

	startIdx := strings.Index(content, start)
	if startIdx == -1 {
		return ""
	}
	endIdx := strings.Index(content, end)
	if endIdx == -1 {
		return ""
	}

	blockStart := startIdx + len(start)
	if blockStart < len(content) && content[blockStart] == '\n' {
		blockStart++
	}
	if blockStart >= endIdx {
		return ""
	}
	return content[blockStart:endIdx]
}

// writeManagedBlock replaces the section's block, or appends it when
// missing. A start marker without an end marker is treated as a damaged
// block and replaced through end of file.
func writeManagedBlock(content, section, block string) string {
	start := fmt.Sprintf(blockStartFmt, section)
	end := fmt.Sprintf(blockEndFmt, section)

	if block != "" && !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	managed := start + "\n" + block + end + "\n"

	startIdx := strings.Index(content, start)
	if startIdx == -1 {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return content + "\n" + managed
	}

	endIdx := strings.Index(content, end)
	if endIdx == -1 {
		return content[:startIdx] + managed
	}

	afterEnd := endIdx + len(end)
	if afterEnd < len(content) && content[afterEnd] == '\n' {
		afterEnd++
	}
	return content[:startIdx] + managed + content[afterEnd:]
}
