// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors turns raw author entries into the cleaned forms used in
// the report: a per-author "Lastname Initials" token and the lead-author
// short citation.
package authors

import (
	"strings"
	"unicode"

	"github.com/pdiddy/preprint-triage/pkg/types"
)

// firstNameStrip removes separator and punctuation characters from the
// first-name portion of a "Last, First" entry.
var firstNameStrip = strings.NewReplacer(
	".", "", ";", "", " ", "", ",", "", "_", "", "-", "",
)

// Clean returns the report form of one author entry, dispatching on the
// shape resolved at ingestion.
func Clean(a types.Author) string {
	if a.Shape == types.ShapeLastFirst {
		return cleanLastFirst(a.Name)
	}
	return ShortName(a.Name)
}

// CleanAll cleans every author, preserving order.
func CleanAll(list types.AuthorList) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, Clean(a))
	}
	return out
}

// cleanLastFirst handles a "Last, First" entry: the first-name portion
// loses all separator characters and follows the last name after a single
// space. An entry without a comma just loses its separator characters.
func cleanLastFirst(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) >= 2 {
		return parts[0] + " " + firstNameStrip.Replace(parts[1])
	}
	return firstNameStrip.Replace(raw)
}

// ShortName converts a full display name, "First Middle Last", into the
// "Surname Initials" short form. The last word is the surname unless it is
// a Jr/Sr suffix, in which case the word before it is. A leading word, a
// single letter, or a capitalized word contributes its initial; a
// lowercase interior word is folded into the surname, which keeps name
// particles ("van", "der") attached.
func ShortName(full string) string {
	words := strings.Fields(full)
	if len(words) == 0 {
		return ""
	}

	surnameAt := len(words) - 1
	surname := title(words[surnameAt])
	if surnameAt > 0 && isSuffixMarker(surname) {
		surnameAt--
		surname = words[surnameAt]
	}

	var initials strings.Builder
	for i, w := range words[:surnameAt] {
		runes := []rune(strings.Trim(w, ".,;"))
		if len(runes) == 0 {
			continue
		}
		if i == 0 || len(runes) == 1 || unicode.IsUpper(runes[0]) {
			initials.WriteRune(unicode.ToUpper(runes[0]))
		} else {
			surname = string(runes) + " " + surname
		}
	}

	return strings.TrimSpace(surname + " " + initials.String())
}

// ShortCitation builds the lead-author citation: the first cleaned author
// plus the publication year in parentheses. The year is the date text up
// to the first dash; a date without dashes is used whole.
func ShortCitation(cleaned []string, date string) string {
	if len(cleaned) == 0 {
		return ""
	}
	year, _, _ := strings.Cut(date, "-")
	return cleaned[0] + " (" + year + ")"
}

// isSuffixMarker reports whether w is a generational suffix ("Jr", "Sr",
// optionally with a trailing period), case-insensitively.
func isSuffixMarker(w string) bool {
	w = strings.TrimRight(strings.ToLower(w), ".")
	return w == "jr" || w == "sr"
}

// title uppercases the first rune of a single word and lowercases the rest.
func title(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	out := []rune{unicode.ToUpper(runes[0])}
	for _, r := range runes[1:] {
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}
