// Package asciidoc extracts header metadata from AsciiDoc guide sources.
//
// Guides authored before per-version structured metadata existed carry their
// metadata inline, as the document title line and header attribute entries:
//
//	= Writing REST services
//	:summary: How to write a REST service.
//	:categories: web, rest
//
// The scanner is callback-driven: callers register a title callback and one
// callback per attribute name they care about, and only present sections
// trigger an invocation.
package asciidoc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Parse scans the document header at path. The title callback receives the
// first document title ("= ..." line); each named attribute (":name: value"
// header line) with a registered callback receives its value. Absent sections
// invoke nothing. Scanning stops at the end of the header, the first blank
// line after the title.
func Parse(path string, title func(string), attributes map[string]func(string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	seenTitle := false
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			if seenTitle {
				break
			}
			continue
		}

		if !seenTitle && strings.HasPrefix(line, "= ") {
			seenTitle = true
			if title != nil {
				title(strings.TrimSpace(line[2:]))
			}
			continue
		}

		if name, value, ok := attributeLine(line); ok {
			if callback, registered := attributes[name]; registered {
				callback(value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return nil
}

// attributeLine matches ":name: value" header attribute entries.
func attributeLine(line string) (name, value string, ok bool) {
	if !strings.HasPrefix(line, ":") {
		return "", "", false
	}
	rest := line[1:]
	idx := strings.Index(rest, ":")
	if idx <= 0 {
		return "", "", false
	}
	return rest[:idx], strings.TrimSpace(rest[idx+1:]), true
}
