package editor

import (
	"regexp"
	"strings"
)

// scan holds the lexical layout of a PHP source file: for every byte,
// whether it is code (outside strings and comments) and the brace depth
// before it.
type scan struct {
	src   string
	code  []bool
	depth []int
}

// analyze scans src. Strings in single, double and back quotes honour
// backslash escapes; comments are //, # and /* */.
func analyze(src string) *scan {
	s := &scan{
		src:   src,
		code:  make([]bool, len(src)),
		depth: make([]int, len(src)),
	}
	depth := 0
	for i := 0; i < len(src); i++ {
		s.depth[i] = depth
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '/', c == '#' && !(i+1 < len(src) && src[i+1] == '['):
			for i < len(src) && src[i] != '\n' {
				s.depth[i] = depth
				i++
			}
			if i < len(src) {
				s.depth[i] = depth
				s.code[i] = true
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			stop := len(src)
			if end >= 0 {
				stop = i + 2 + end + 2
			}
			for ; i < stop; i++ {
				s.depth[i] = depth
			}
			i--
		case c == '\'' || c == '"' || c == '`':
			s.code[i] = true
			i++
			for i < len(src) && src[i] != c {
				s.depth[i] = depth
				if src[i] == '\\' && i+1 < len(src) {
					i++
					s.depth[i] = depth
				}
				i++
			}
			if i < len(src) {
				s.depth[i] = depth
				s.code[i] = true
			}
		default:
			s.code[i] = true
			switch c {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
	}
	return s
}

// isCode reports whether the byte at i starts code, not a string body or
// comment. Opening quotes count as code so matches may begin with one.
func (s *scan) isCode(i int) bool {
	return i >= 0 && i < len(s.code) && s.code[i]
}

// match returns the offset of the brace closing the one at open.
func (s *scan) match(open int) (int, bool) {
	if !s.isCode(open) || s.src[open] != '{' {
		return 0, false
	}
	want := s.depth[open] + 1
	for j := open + 1; j < len(s.src); j++ {
		if s.code[j] && s.src[j] == '}' && s.depth[j] == want {
			return j, true
		}
	}
	return 0, false
}

// Block is a brace-delimited region of a source file.
type Block struct {
	// Start is the offset of the block header.
	Start int
	// Open and Close are the offsets of the braces.
	Open, Close int
}

// Body returns the text between the braces.
func (b Block) Body(src string) string {
	return src[b.Open+1 : b.Close]
}

// headerPattern compiles a header into a pattern that tolerates any
// whitespace between its non-space runs and around the opening brace.
func headerPattern(header string) *regexp.Regexp {
	header = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(header), "{"))
	parts := strings.Fields(header)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	pat := strings.Join(parts, `\s*`)
	// Allow optional whitespace inside bracket pairs, e.g. "function()" and "function ()".
	pat = strings.ReplaceAll(pat, `\(\)`, `\(\s*\)`)
	return regexp.MustCompile(pat + `\s*\{`)
}

// blocks returns every block whose header matches header and starts in code.
func (s *scan) blocks(header string) []Block {
	var out []Block
	for _, loc := range headerPattern(header).FindAllStringIndex(s.src, -1) {
		if !s.isCode(loc[0]) {
			continue
		}
		open := loc[1] - 1
		closing, ok := s.match(open)
		if !ok {
			continue
		}
		out = append(out, Block{Start: loc[0], Open: open, Close: closing})
	}
	return out
}

// FindBlocks returns the blocks of src opened by header. Whitespace in the
// header is matched loosely.
func FindBlocks(src, header string) []Block {
	return analyze(src).blocks(header)
}

// MatchBrace returns the offset of the brace closing the one at open.
func MatchBrace(src string, open int) (int, bool) {
	return analyze(src).match(open)
}

// lineStart returns the offset of the first byte of the line holding i.
func lineStart(src string, i int) int {
	return strings.LastIndexByte(src[:i], '\n') + 1
}

// lineEnd returns the offset just past the newline ending the line holding
// i, or len(src).
func lineEnd(src string, i int) int {
	if j := strings.IndexByte(src[i:], '\n'); j >= 0 {
		return i + j + 1
	}
	return len(src)
}

// indentOf returns the leading whitespace of the line holding i.
func indentOf(src string, i int) string {
	start := lineStart(src, i)
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return src[start:end]
}

// onlySpaceBefore reports whether the line holding i has only whitespace
// before i.
func onlySpaceBefore(src string, i int) bool {
	return strings.TrimSpace(src[lineStart(src, i):i]) == ""
}
