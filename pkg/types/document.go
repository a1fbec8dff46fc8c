// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures of the triage pipeline.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Dataset is the decoded form of the preprint collection JSON. The feed
// wraps all records in a top-level "rels" array.
type Dataset struct {
	Rels []Document `json:"rels"`
}

// Document is one preprint record from the source feed. The pipeline only
// reads it; derived values live in OutputRow.
type Document struct {
	DOI        string     `json:"rel_doi"`
	Title      string     `json:"rel_title"`
	Abstract   string     `json:"rel_abs"`
	Authors    AuthorList `json:"rel_authors"`
	Date       string     `json:"rel_date"`
	Site       string     `json:"rel_site"`
	Link       string     `json:"rel_link"`
	NumAuthors int        `json:"rel_num_authors"`
}

// AuthorNameShape tags which raw shape an author entry arrived in.
type AuthorNameShape int

const (
	// ShapeDisplay is a full display name such as "John Michael Smith",
	// taken from a structured author object.
	ShapeDisplay AuthorNameShape = iota

	// ShapeLastFirst is a "Last, First" entry taken from the older
	// semicolon-delimited author string.
	ShapeLastFirst
)

// Author is one raw author entry with its shape resolved at ingestion.
type Author struct {
	Shape AuthorNameShape
	Name  string
}

// AuthorList decodes both author shapes the feed has used over time: an
// array of structured objects carrying an author_name field, or a single
// semicolon-delimited string of "Last, First" entries. The shape is
// resolved here once so nothing downstream branches on feed format.
type AuthorList []Author

type authorObject struct {
	Name string `json:"author_name"`
}

func (l *AuthorList) UnmarshalJSON(data []byte) error {
	var objs []authorObject
	if err := json.Unmarshal(data, &objs); err == nil {
		out := make(AuthorList, 0, len(objs))
		for _, o := range objs {
			out = append(out, Author{Shape: ShapeDisplay, Name: o.Name})
		}
		*l = out
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("rel_authors is neither an object array nor a string")
	}
	var out AuthorList
	for _, part := range strings.Split(joined, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, Author{Shape: ShapeLastFirst, Name: part})
	}
	*l = out
	return nil
}
