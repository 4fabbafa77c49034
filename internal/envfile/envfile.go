package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	serrors "github.com/torvikdev/envstash/internal/errors"
)

// Parse reads KEY=VALUE lines from r into a map.
//
// Blank lines and lines starting with # are skipped. An optional "export "
// prefix is stripped. Any other line that does not contain a non-empty key
// followed by = fails the whole parse with ErrMalformedSecretLine and the
// offending 1-based line number: silently dropping lines would hand the
// caller a partial secret set.
//
// path is used only for error messages.
func Parse(r io.Reader, path string) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		idx := strings.Index(line, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("%w: %s line %d", serrors.ErrMalformedSecretLine, path, lineNum)
		}

		key := strings.TrimSpace(line[:idx])
		if key == "" {
			return nil, fmt.Errorf("%w: %s line %d", serrors.ErrMalformedSecretLine, path, lineNum)
		}

		values[key] = unquote(strings.TrimSpace(line[idx+1:]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return values, nil
}

// ParseFile parses the KEY=VALUE file at path. The file must exist; callers
// decide whether absence is an error or a first-run condition.
func ParseFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file, path)
}

// Serialize writes values to w as one KEY=VALUE line per entry, keys sorted
// so output is deterministic. Values that would not survive a parse
// round-trip (whitespace, quotes, #, =, newlines) are double-quoted with
// escape sequences.
func Serialize(w io.Writer, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, quote(values[key])); err != nil {
			return err
		}
	}
	return nil
}

// LookupKey scans the dotenv file at path for an assignment of key and
// returns its value. Unlike Parse it tolerates lines it cannot understand:
// the project's .env file is not owned by envstash and is never rejected
// wholesale. A missing file reports found=false, not an error.
func LookupKey(path, key string) (string, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if name, value, ok := splitAssignment(scanner.Text()); ok && name == key {
			return unquote(value), true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return "", false, nil
}

// UpsertKey inserts or replaces a single variable in the dotenv file at
// path, preserving every other line and its order. The file is created if
// absent. Only the matched assignment line is rewritten; comments, blank
// lines, and unrelated (even unparseable) lines pass through untouched.
func UpsertKey(path, key, value string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var b strings.Builder
	replaced := false

	if len(data) > 0 {
		lines := strings.Split(string(data), "\n")
		// A trailing newline yields a final empty element; drop it so the
		// terminator is written exactly once below.
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		for _, line := range lines {
			if name, _, ok := splitAssignment(line); ok && name == key && !replaced {
				b.WriteString(key + "=" + value)
				replaced = true
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}

	if !replaced {
		b.WriteString(key + "=" + value + "\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// splitAssignment reports whether line is a KEY=VALUE assignment, after
// trimming whitespace and an optional "export " prefix. Comments and blank
// lines are not assignments.
func splitAssignment(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	idx := strings.Index(line, "=")
	if idx <= 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

// quote wraps value in double quotes with escapes when it contains
// characters that would not survive a parse round-trip.
func quote(value string) string {
	if !strings.ContainsAny(value, " \t\n\r#='\"") {
		return value
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// unquote strips matching surrounding quotes. Double-quoted values have
// escape sequences expanded; single-quoted values are taken literally.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}

	first := value[0]
	if (first != '"' && first != '\'') || value[len(value)-1] != first {
		return value
	}
	inner := value[1 : len(value)-1]
	if first == '\'' {
		return inner
	}

	var b strings.Builder
	escaped := false
	for _, r := range inner {
		if escaped {
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}
