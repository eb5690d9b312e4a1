package mapper

import "strings"

// Purpose is the semantic role of a field inferred from its name.
type Purpose int

// Field purposes.
const (
	PurposeNone Purpose = iota
	PurposeEmail
	PurposePassword
	PurposeImage
	PurposeURL
	PurposePhone
	PurposeAddress
	PurposeTitle
	PurposeBody
)

var purposeNames = [...]string{
	PurposeNone:     "none",
	PurposeEmail:    "email",
	PurposePassword: "password",
	PurposeImage:    "image",
	PurposeURL:      "url",
	PurposePhone:    "phone",
	PurposeAddress:  "address",
	PurposeTitle:    "title",
	PurposeBody:     "body",
}

// String returns the purpose name.
func (p Purpose) String() string {
	if p >= 0 && int(p) < len(purposeNames) {
		return purposeNames[p]
	}
	return purposeNames[PurposeNone]
}

// Heuristic infers a Purpose from a field name.
type Heuristic struct {
	Purpose Purpose
	// Substrings that trigger the purpose when contained in the name.
	Contains []string
	// Names that trigger the purpose only on an exact match.
	Exact []string
}

// Match reports whether the heuristic applies to name.
func (h Heuristic) Match(name string) bool {
	name = strings.ToLower(name)
	for _, s := range h.Exact {
		if name == s {
			return true
		}
	}
	for _, s := range h.Contains {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// Heuristics is the ordered list of name rules. It is evaluated top to
// bottom before any type-based fallback and the first match wins, so
// "email_address" is an email, not an address.
var Heuristics = []Heuristic{
	{Purpose: PurposeEmail, Contains: []string{"email"}},
	{Purpose: PurposePassword, Contains: []string{"password"}},
	{Purpose: PurposeImage, Contains: []string{"image", "photo", "avatar"}},
	{Purpose: PurposeURL, Contains: []string{"url", "link"}},
	{Purpose: PurposePhone, Contains: []string{"phone"}},
	{Purpose: PurposeAddress, Contains: []string{"address"}},
	{Purpose: PurposeTitle, Exact: []string{"name", "title"}},
	{Purpose: PurposeBody, Exact: []string{"content", "description", "body"}},
}

// PurposeOf returns the purpose of the first heuristic matching name.
func PurposeOf(name string) Purpose {
	for _, h := range Heuristics {
		if h.Match(name) {
			return h.Purpose
		}
	}
	return PurposeNone
}
