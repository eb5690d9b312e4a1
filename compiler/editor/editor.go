// Package editor patches aggregate source files (route registries, seeder
// registries) in place.
//
// Insertion points are located with a small structural scanner that skips
// strings and comments and matches braces, so statements land inside the
// intended block rather than at a blindly chosen offset. Every operation is
// idempotent: applying it to its own output is a no-op.
package editor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrStructuralPatchFailed indicates that an expected anchor (a block, a
// method body, a namespace) could not be located.
var ErrStructuralPatchFailed = errors.New("scaffold: structural patch failed")

// PatchError describes a failed structural patch.
type PatchError struct {
	Anchor  string
	Message string
}

// Error implements the error interface.
func (e *PatchError) Error() string {
	return fmt.Sprintf("scaffold: structural patch failed at %q: %s", e.Anchor, e.Message)
}

// Is reports whether the target is ErrStructuralPatchFailed.
func (e *PatchError) Is(target error) bool {
	return target == ErrStructuralPatchFailed
}

// DefaultIndent is the indentation of statements inserted into a block.
const DefaultIndent = "    "

// Registration describes a statement that must be present in an aggregate
// file.
type Registration struct {
	// Marker is the snippet whose presence means the registration exists.
	// It defaults to Statement.
	Marker string
	// Statement is the text inserted, without indentation.
	Statement string
	// Block is the header of the grouping block, e.g.
	// "Route::middleware(['web'])->group(function () {". An empty Block
	// appends the statement at the end of the file.
	Block string
	// BlockClose closes a block created when none exists, e.g. "});".
	BlockClose string
	// Indent of the statement inside the block. Defaults to DefaultIndent.
	Indent string
}

func (r Registration) marker() string {
	if r.Marker != "" {
		return r.Marker
	}
	return r.Statement
}

// EnsureRegistration makes sure reg is present in src. It reports whether
// src was changed. If the marker is already present src is returned as is;
// otherwise the statement is inserted as the last statement of the first
// block opened by reg.Block, or a new block is appended when none exists.
func EnsureRegistration(src string, reg Registration) (string, bool, error) {
	if reg.Statement == "" {
		return src, false, &PatchError{Anchor: reg.Block, Message: "empty statement"}
	}
	if strings.Contains(src, reg.marker()) {
		return src, false, nil
	}
	indent := reg.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	if reg.Block == "" {
		return appendText(src, reg.Statement+"\n"), true, nil
	}
	if blocks := FindBlocks(src, reg.Block); len(blocks) > 0 {
		return insertLast(src, blocks[0], reg.Statement, indent), true, nil
	}
	closer := reg.BlockClose
	if closer == "" {
		closer = "}"
	}
	block := strings.TrimSpace(reg.Block)
	if !strings.HasSuffix(block, "{") {
		block += " {"
	}
	text := block + "\n" + indentLines(reg.Statement, indent) + "\n" + closer + "\n"
	if strings.TrimSpace(src) != "" {
		text = "\n" + text
	}
	return appendText(src, text), true, nil
}

// insertLast inserts stmt as the last statement of block b.
func insertLast(src string, b Block, stmt, indent string) string {
	// Follow the indentation of the block's last statement when it sits on
	// its own line.
	body := strings.TrimRight(b.Body(src), " \t\n\r")
	last := b.Open + len(body)
	if strings.TrimSpace(body) != "" && lineStart(src, last) > b.Open {
		indent = indentOf(src, last)
	} else {
		indent = indentOf(src, b.Start) + indent
	}
	line := indentLines(stmt, indent) + "\n"
	if onlySpaceBefore(src, b.Close) && lineStart(src, b.Close) > b.Open {
		at := lineStart(src, b.Close)
		return src[:at] + line + src[at:]
	}
	return src[:b.Close] + "\n" + line + indentOf(src, b.Start) + src[b.Close:]
}

// RemoveRegistration removes every line of src holding marker and reports
// the number of lines removed.
func RemoveRegistration(src, marker string) (string, int) {
	if marker == "" {
		return src, 0
	}
	var (
		b       strings.Builder
		removed int
	)
	for _, line := range strings.SplitAfter(src, "\n") {
		if strings.Contains(line, marker) {
			removed++
			continue
		}
		b.WriteString(line)
	}
	return b.String(), removed
}

// PruneEmptyBlocks removes the blocks opened by any of headers whose body is
// only whitespace, together with the rest of their closing line. It reports
// the number of blocks removed.
func PruneEmptyBlocks(src string, headers ...string) (string, int) {
	pruned := 0
	for _, h := range headers {
		for {
			var target *Block
			for _, b := range FindBlocks(src, h) {
				if strings.TrimSpace(b.Body(src)) == "" {
					target = &b
					break
				}
			}
			if target == nil {
				break
			}
			start := lineStart(src, target.Start)
			if !onlySpaceBefore(src, target.Start) {
				start = target.Start
			}
			end := lineEnd(src, target.Close)
			// Swallow one blank line in front of the block.
			if start >= 2 && src[start-1] == '\n' && src[start-2] == '\n' {
				start--
			}
			src = src[:start] + src[end:]
			pruned++
		}
	}
	return src, pruned
}

var (
	namespaceRe = regexp.MustCompile(`(?m)^\s*namespace\s+[^;]+;[^\n]*\n?`)
	useRe       = regexp.MustCompile(`(?m)^use\s+[^;]+;[^\n]*\n?`)
	openTagRe   = regexp.MustCompile(`^<\?php[^\n]*\n?`)
)

// EnsureImport makes sure the top-level use statement stmt is in src. It is
// inserted after the last top-level use statement, or after the namespace
// declaration, or after the opening tag.
func EnsureImport(src, stmt string) (string, bool, error) {
	stmt = strings.TrimSpace(stmt)
	if hasImport(src, stmt) {
		return src, false, nil
	}
	s := analyze(src)
	at := -1
	for _, loc := range useRe.FindAllStringIndex(src, -1) {
		if s.isCode(loc[0]) && s.depth[loc[0]] == 0 {
			at = loc[1]
		}
	}
	if at >= 0 {
		if at > 0 && src[at-1] != '\n' {
			return src[:at] + "\n" + stmt + src[at:], true, nil
		}
		return src[:at] + stmt + "\n" + src[at:], true, nil
	}
	if loc := namespaceRe.FindStringIndex(src); loc != nil && s.isCode(loc[0]) {
		return src[:loc[1]] + "\n" + stmt + "\n" + src[loc[1]:], true, nil
	}
	if loc := openTagRe.FindStringIndex(src); loc != nil {
		return src[:loc[1]] + "\n" + stmt + "\n" + src[loc[1]:], true, nil
	}
	return src, false, &PatchError{Anchor: "namespace", Message: "no use statement, namespace or opening tag found"}
}

// RemoveImport removes the top-level use statement stmt from src.
func RemoveImport(src, stmt string) (string, bool) {
	out, n := RemoveRegistration(src, strings.TrimSpace(stmt))
	return out, n > 0
}

func hasImport(src, stmt string) bool {
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == stmt {
			return true
		}
	}
	return false
}

// FindMethod returns the body block of the named method.
func FindMethod(src, name string) (Block, bool) {
	re := regexp.MustCompile(`function\s+` + regexp.QuoteMeta(name) + `\s*\([^)]*\)\s*(?::\s*[\w\\|?]+\s*)?\{`)
	s := analyze(src)
	for _, loc := range re.FindAllStringIndex(src, -1) {
		if !s.isCode(loc[0]) {
			continue
		}
		open := loc[1] - 1
		if closing, ok := s.match(open); ok {
			return Block{Start: loc[0], Open: open, Close: closing}, true
		}
	}
	return Block{}, false
}

// EnsureMethodStatement makes sure stmt is the last statement of the body of
// the named method unless marker is already referenced in that body. A
// marker only matches at an identifier boundary, so PostSeeder::class is not
// found inside BlogPostSeeder::class.
func EnsureMethodStatement(src, method, marker, stmt string) (string, bool, error) {
	b, ok := FindMethod(src, method)
	if !ok {
		return src, false, &PatchError{Anchor: "function " + method, Message: "method body not found"}
	}
	if marker == "" {
		marker = stmt
	}
	if references(b.Body(src), marker) {
		return src, false, nil
	}
	return insertLast(src, b, stmt, DefaultIndent), true, nil
}

// references reports whether marker occurs in s not preceded by an
// identifier character.
func references(s, marker string) bool {
	for i := 0; marker != ""; {
		j := strings.Index(s[i:], marker)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 || !isIdent(s[at-1]) {
			return true
		}
		i = at + 1
	}
	return false
}

func isIdent(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// RemoveMethodStatement removes the lines holding marker from the body of
// the named method.
func RemoveMethodStatement(src, method, marker string) (string, bool) {
	b, ok := FindMethod(src, method)
	if !ok {
		return src, false
	}
	body, n := RemoveRegistration(b.Body(src), marker)
	if n == 0 {
		return src, false
	}
	return src[:b.Open+1] + body + src[b.Close:], true
}

func appendText(src, text string) string {
	if src != "" && !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	return src + text
}

func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}
