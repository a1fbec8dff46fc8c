// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package triage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pdiddy/preprint-triage/internal/keywords"
	"github.com/pdiddy/preprint-triage/internal/textnorm"
	"github.com/pdiddy/preprint-triage/pkg/types"
)

var (
	normOnce sync.Once
	norm     *textnorm.Normalizer
	normErr  error
)

// sharedNorm loads the lemmatizer dictionary once for the whole package;
// the Normalizer is read-only after construction.
func sharedNorm(t *testing.T) *textnorm.Normalizer {
	t.Helper()
	normOnce.Do(func() {
		norm, normErr = textnorm.New()
	})
	if normErr != nil {
		t.Fatalf("textnorm.New() error: %v", normErr)
	}
	return norm
}

// stemOf returns the single stem a one-word term normalizes to. Tests
// derive expected report values from the live pipeline instead of
// hardcoding stemmer output.
func stemOf(t *testing.T, n *textnorm.Normalizer, word string) string {
	t.Helper()
	stems := n.Stems(word)
	if len(stems) != 1 {
		t.Fatalf("Stems(%q) = %v, want one stem", word, stems)
	}
	return stems[0]
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func testTiers(t *testing.T, n *textnorm.Normalizer, high, med, low string) keywords.TierSets {
	t.Helper()
	dir := t.TempDir()
	tiers, err := keywords.LoadTiers(types.KeywordFiles{
		High: writeFile(t, dir, "high.txt", high),
		Med:  writeFile(t, dir, "med.txt", med),
		Low:  writeFile(t, dir, "low.txt", low),
	}, n)
	if err != nil {
		t.Fatalf("LoadTiers() error: %v", err)
	}
	return tiers
}

func testScoreCfg() types.ScoreConfig {
	return types.ScoreConfig{
		HighBounty: 10,
		MedBounty:  3,
		LowBounty:  1,
		SiteBounty: 7,
		BountySite: "biorxiv",
	}
}

func testDataset() *types.Dataset {
	return &types.Dataset{Rels: []types.Document{
		{
			DOI:      "10.1101/2020.04.01.111111",
			Title:    "Spike protein binding",
			Abstract: "The spike protein mediates entry.",
			Authors: types.AuthorList{
				{Shape: types.ShapeDisplay, Name: "John Michael Smith"},
				{Shape: types.ShapeDisplay, Name: "Jane Doe"},
			},
			Date:       "2020-04-01",
			Site:       "BioRxiv",
			Link:       "https://example.org/1",
			NumAuthors: 2,
		},
		{
			DOI:        "10.1101/2020.04.02.222222",
			Title:      "Consortium announcement",
			Abstract:   "No individual authors are listed.",
			Date:       "2020-04-02",
			Site:       "BioRxiv",
			Link:       "https://example.org/2",
			NumAuthors: 0,
		},
		{
			DOI:      "10.1101/2020.04.03.333333",
			Title:    "Community outbreak dynamics",
			Abstract: "We describe replication of the virus during an outbreak.",
			Authors: types.AuthorList{
				{Shape: types.ShapeLastFirst, Name: "Smith, John"},
				{Shape: types.ShapeLastFirst, Name: "Doe, Jane"},
			},
			Date:       "2020-04-03",
			Site:       "MedRxiv",
			Link:       "https://example.org/3",
			NumAuthors: 2,
		},
	}}
}

func testRunner(t *testing.T) *Runner {
	n := sharedNorm(t)
	return &Runner{
		Norm:  n,
		Tiers: testTiers(t, n, "spike protein\n", "replication\n", "outbreak\n"),
		Score: testScoreCfg(),
	}
}

func TestRunSkipsZeroAuthorDocuments(t *testing.T) {
	res := testRunner(t).Run(testDataset())

	if len(res.Rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(res.Rows))
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", res.Skipped)
	}
	for _, row := range res.Rows {
		if row.DOI == "10.1101/2020.04.02.222222" {
			t.Errorf("zero-author document present in output")
		}
	}
	// Input order preserved.
	if res.Rows[0].DOI != "10.1101/2020.04.01.111111" || res.Rows[1].DOI != "10.1101/2020.04.03.333333" {
		t.Errorf("rows out of input order: %s, %s", res.Rows[0].DOI, res.Rows[1].DOI)
	}
}

func TestRunScoresAndMatches(t *testing.T) {
	n := sharedNorm(t)
	res := testRunner(t).Run(testDataset())
	if len(res.Rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(res.Rows))
	}

	// Document 1: "spike" and "protein" each occur twice across title and
	// abstract: tier score 4, weighted 40, plus the biorxiv bounty.
	first := res.Rows[0]
	if first.Score != 47 {
		t.Errorf("first score = %v, want 47", first.Score)
	}
	wantMatches := []string{stemOf(t, n, "protein"), stemOf(t, n, "spike")}
	if first.Matches != strings.Join(wantMatches, "|") {
		t.Errorf("first matches = %q, want %q", first.Matches, strings.Join(wantMatches, "|"))
	}

	// Document 3: one med match, two low occurrences, no bounty for a
	// MedRxiv record.
	second := res.Rows[1]
	if second.Score != 5 {
		t.Errorf("second score = %v, want 5", second.Score)
	}
	want := stemOf(t, n, "replication") + "|" + stemOf(t, n, "outbreak")
	if second.Matches != want {
		t.Errorf("second matches = %q, want %q", second.Matches, want)
	}
}

func TestRunFormatsAuthors(t *testing.T) {
	res := testRunner(t).Run(testDataset())

	first := res.Rows[0]
	if first.AuthorShort != "Smith JM (2020)" {
		t.Errorf("AuthorShort = %q, want %q", first.AuthorShort, "Smith JM (2020)")
	}
	if first.Authors != "Smith JM|Doe J" {
		t.Errorf("Authors = %q, want %q", first.Authors, "Smith JM|Doe J")
	}

	second := res.Rows[1]
	if second.AuthorShort != "Smith John (2020)" {
		t.Errorf("AuthorShort = %q, want %q", second.AuthorShort, "Smith John (2020)")
	}
	if second.Authors != "Smith John|Doe Jane" {
		t.Errorf("Authors = %q, want %q", second.Authors, "Smith John|Doe Jane")
	}
}

func TestRunProgressLines(t *testing.T) {
	r := testRunner(t)
	var buf bytes.Buffer
	r.Progress = &buf

	r.Run(testDataset())

	out := buf.String()
	if !strings.Contains(out, "Triaging: 3 preprint articles") {
		t.Errorf("missing run banner in %q", out)
	}
	if got := strings.Count(out, "Document Score:"); got != 2 {
		t.Errorf("score lines = %d, want 2 (skipped documents report nothing)", got)
	}
}

func TestHyphenatedKeywordAsymmetry(t *testing.T) {
	// The keyword "viral-load" collapses to one stem at load time. A
	// document spelling it hyphenated collapses the same way and matches;
	// a document spelling it as two words stays two tokens and must not.
	n := sharedNorm(t)
	r := &Runner{
		Norm:  n,
		Tiers: testTiers(t, n, "viral-load\n", "", ""),
		Score: testScoreCfg(),
	}

	doc := func(abs string) *types.Dataset {
		return &types.Dataset{Rels: []types.Document{{
			DOI:      "10.1101/x",
			Title:    "Measurement study",
			Abstract: abs,
			Authors: types.AuthorList{
				{Shape: types.ShapeDisplay, Name: "Jane Doe"},
			},
			Date:       "2021-01-01",
			Site:       "MedRxiv",
			NumAuthors: 1,
		}}}
	}

	spaced := r.Run(doc("Patients showed elevated viral load levels."))
	if spaced.Rows[0].Matches != "" {
		t.Errorf("two-word spelling matched %q, want no match", spaced.Rows[0].Matches)
	}

	hyphenated := r.Run(doc("Patients showed elevated viral-load levels."))
	if hyphenated.Rows[0].Matches == "" {
		t.Errorf("hyphenated spelling should match the collapsed keyword stem")
	}
}

func TestWriteCSVHeaderAndRows(t *testing.T) {
	res := testRunner(t).Run(testDataset())
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteCSV(path, res.Rows); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[0] != "DOI,AUTHOR_SHORT,TITLE,ABSTRACT,AUTHORS,DATE,SOURCE,LINK,DOC_SCORE,MATCHING_KEYWORDS" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 3 {
		t.Errorf("line count = %d, want header plus 2 rows", len(lines))
	}
}

func TestPipelineIdempotent(t *testing.T) {
	r := testRunner(t)
	dir := t.TempDir()

	pathA := filepath.Join(dir, "a.csv")
	pathB := filepath.Join(dir, "b.csv")
	if err := WriteCSV(pathA, r.Run(testDataset()).Rows); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := WriteCSV(pathB, r.Run(testDataset()).Rows); err != nil {
		t.Fatalf("second run: %v", err)
	}

	a, _ := os.ReadFile(pathA)
	b, _ := os.ReadFile(pathB)
	if !bytes.Equal(a, b) {
		t.Errorf("two runs over the same input produced different report bytes")
	}
}

func TestBuildSummary(t *testing.T) {
	res := testRunner(t).Run(testDataset())
	s := BuildSummary("data/preprints.json", res)

	if s.Documents != 3 || s.Rows != 2 || s.Skipped != 1 {
		t.Errorf("summary counts = %d/%d/%d, want 3/2/1", s.Documents, s.Rows, s.Skipped)
	}
	if s.TopScore != 47 || s.TopDOI != "10.1101/2020.04.01.111111" {
		t.Errorf("top = %v %q", s.TopScore, s.TopDOI)
	}
	if s.DataFile != "data/preprints.json" {
		t.Errorf("data file = %q", s.DataFile)
	}
}

func TestFormatTop(t *testing.T) {
	rows := []types.OutputRow{
		{DOI: "a", Title: "Low scorer", AuthorShort: "Doe J (2020)", Site: "medrxiv", Score: 1},
		{DOI: "b", Title: "High scorer", AuthorShort: "Smith JM (2020)", Site: "biorxiv", Score: 50},
	}

	var buf bytes.Buffer
	FormatTop(rows, 1, &buf)
	out := buf.String()

	if !strings.Contains(out, "High scorer") {
		t.Errorf("top row missing from %q", out)
	}
	if strings.Contains(out, "Low scorer") {
		t.Errorf("table should be cut to top 1, got %q", out)
	}
}
