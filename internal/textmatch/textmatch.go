// Package textmatch provides the shared text heuristics used by pattern and
// relationship detection: action-verb recognition for buttons, breadcrumb
// separator detection, and navigation keyword matching.
//
// All matching is done on case-folded text so classifier and OCR casing
// differences never matter.
package textmatch

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Fold returns the case-folded form of s for caseless comparison.
func Fold(s string) string {
	return folder.String(s)
}

// actionRe matches the verbs that mark a button as an action trigger
// (form submission, sign-in, purchase and similar).
var actionRe = regexp.MustCompile(`\b(submit|send|save|register|login|log in|sign up|sign in|sign out|buy|add|search|subscribe|continue|next|download|get started|order|checkout|apply|confirm|update|create|delete|ok|go)\b`)

// separatorRe matches breadcrumb trails: text on both sides of a
// `>`, `/`, `›`, or `»` separator.
var separatorRe = regexp.MustCompile(`\S\s*[>/›»]\s*\S`)

// navKeywords are the labels commonly carried by navigation entries.
var navKeywords = map[string]bool{
	"home":     true,
	"about":    true,
	"contact":  true,
	"services": true,
	"products": true,
	"blog":     true,
	"news":     true,
	"menu":     true,
	"profile":  true,
	"settings": true,
	"help":     true,
	"support":  true,
	"pricing":  true,
	"features": true,
	"docs":     true,
}

// IsAction reports whether the text contains an action verb.
func IsAction(s string) bool {
	if s == "" {
		return false
	}
	return actionRe.MatchString(Fold(s))
}

// HasBreadcrumbSeparator reports whether the text looks like a breadcrumb
// trail segment.
func HasBreadcrumbSeparator(s string) bool {
	if s == "" {
		return false
	}
	return separatorRe.MatchString(s)
}

// IsNavKeyword reports whether the text is a common navigation label.
func IsNavKeyword(s string) bool {
	if s == "" {
		return false
	}
	return navKeywords[strings.TrimSpace(Fold(s))]
}
