package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words splits an identifier into words. Separators are '_', '-', '.', '/'
// and whitespace; a lower-to-upper transition and the end of an upper-case
// run followed by a lower-case letter also start a new word.
//
//	Words("blogPost")   // [blog Post]
//	Words("HTTPServer") // [HTTP Server]
//	Words("user_id")    // [user id]
func Words(s string) []string {
	spans := wordSpans(s)
	words := make([]string, len(spans))
	for i, sp := range spans {
		words[i] = s[sp[0]:sp[1]]
	}
	return words
}

// wordSpans returns the [start, end) byte offsets of every word in s.
func wordSpans(s string) [][2]int {
	var (
		spans [][2]int
		start = -1
		prev  rune
	)
	runes := []rune(s)
	offsets := make([]int, len(runes)+1)
	o := 0
	for i, r := range runes {
		offsets[i] = o
		o += utf8.RuneLen(r)
	}
	offsets[len(runes)] = o
	for i, r := range runes {
		if isSeparator(r) {
			if start >= 0 {
				spans = append(spans, [2]int{start, offsets[i]})
				start = -1
			}
			prev = r
			continue
		}
		if start < 0 {
			start = offsets[i]
			prev = r
			continue
		}
		split := false
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			split = true
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			split = true
		}
		if split {
			spans = append(spans, [2]int{start, offsets[i]})
			start = offsets[i]
		}
		prev = r
	}
	if start >= 0 {
		spans = append(spans, [2]int{start, len(s)})
	}
	return spans
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
}

// Studly converts s to StudlyCase. Each word gets an upper-case first letter;
// the rest of the word is kept as written.
//
//	Studly("user_id")  // UserId
//	Studly("blogPost") // BlogPost
func Studly(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// Camel converts s to camelCase.
//
//	Camel("BlogPost")   // blogPost
//	Camel("HTTPServer") // httpServer
func Camel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// Snake converts s to snake_case.
func Snake(s string) string {
	return joinLower(s, "_")
}

// Kebab converts s to kebab-case.
func Kebab(s string) string {
	return joinLower(s, "-")
}

func joinLower(s, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return s != ""
}
