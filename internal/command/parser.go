// Package command classifies one normalized chat message against the fixed
// grammar of notes commands. Matching is declaration-ordered: static keyword
// sets are consulted before the regex rules that capture arguments, so a
// message equal to a bare keyword never falls into a capture rule. Anything
// that matches no rule (including a read/delete whose argument is not of the
// form note-<digits>) classifies as Unrecognized.
package command

import (
	"regexp"
	"strings"
)

type Kind int

const (
	Unrecognized Kind = iota
	ListNotes
	ReadNote
	CreateNote
	SearchNotes
	ListCategories
	ListTags
	DeleteNote
	Help
)

// Command is the transient classification of a single message. It lives for
// one adapter invocation and is discarded after dispatch.
type Command struct {
	Kind  Kind
	Slug  string // ReadNote, DeleteNote
	Query string // SearchNotes
}

var (
	filterReadRe   = regexp.MustCompile(`^/?read\s+(note-\d+)`)
	filterSearchRe = regexp.MustCompile(`^/?search\s+(.+)$`)

	pipeReadRe   = regexp.MustCompile(`^/?(?:read|show|open|view)\s+(note-\d+)$`)
	pipeSearchRe = regexp.MustCompile(`^/?search\s+["']?(.+?)["']?$`)
	pipeDeleteRe = regexp.MustCompile(`^/?delete\s+(note-\d+)$`)

	mentionRe = regexp.MustCompile(`(?i)note-\d+`)
)

var (
	listKeywords       = []string{"notes", "/notes", "list notes", "show notes", "my notes"}
	newKeywords        = []string{"/new", "new"}
	categoriesKeywords = []string{"categories", "/categories", "list categories", "show categories"}
	tagsKeywords       = []string{"tags", "/tags", "list tags", "show tags", "all tags"}
	helpKeywords       = []string{"help", "/help", "?", "notes help"}
)

// Normalize produces the lower-cased, whitespace-trimmed copy of a message
// that all matching runs against. Argument capture happens on this copy, so
// search queries lose their original casing.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ParseFilter matches against the augmentation adapter's grammar:
// list, read, new and search.
func ParseFilter(normalized string) Command {
	if matchKeyword(normalized, listKeywords) || strings.HasPrefix(normalized, "/notes ") {
		return Command{Kind: ListNotes}
	}
	if m := filterReadRe.FindStringSubmatch(normalized); m != nil {
		return Command{Kind: ReadNote, Slug: m[1]}
	}
	if matchKeyword(normalized, newKeywords) {
		return Command{Kind: CreateNote}
	}
	if m := filterSearchRe.FindStringSubmatch(normalized); m != nil {
		return Command{Kind: SearchNotes, Query: strings.TrimSpace(m[1])}
	}
	return Command{Kind: Unrecognized}
}

// ParsePipe matches against the direct responder's grammar, which adds
// categories, tags, delete and help on top of list, read and search.
func ParsePipe(normalized string) Command {
	if matchKeyword(normalized, listKeywords) {
		return Command{Kind: ListNotes}
	}
	if m := pipeReadRe.FindStringSubmatch(normalized); m != nil {
		return Command{Kind: ReadNote, Slug: m[1]}
	}
	if m := pipeSearchRe.FindStringSubmatch(normalized); m != nil {
		return Command{Kind: SearchNotes, Query: strings.TrimSpace(m[1])}
	}
	if matchKeyword(normalized, categoriesKeywords) {
		return Command{Kind: ListCategories}
	}
	if matchKeyword(normalized, tagsKeywords) {
		return Command{Kind: ListTags}
	}
	if m := pipeDeleteRe.FindStringSubmatch(normalized); m != nil {
		return Command{Kind: DeleteNote, Slug: m[1]}
	}
	if matchKeyword(normalized, helpKeywords) {
		return Command{Kind: Help}
	}
	return Command{Kind: Unrecognized}
}

// Mentions scans free text for note-<digits> slugs, case-insensitively, and
// returns each distinct slug once in first-occurrence order. Slugs are
// lower-cased so repeated mentions with different casing collapse.
func Mentions(text string) []string {
	raw := mentionRe.FindAllString(text, -1)
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	slugs := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(s)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		slugs = append(slugs, s)
	}
	return slugs
}

func matchKeyword(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if normalized == kw {
			return true
		}
	}
	return false
}
