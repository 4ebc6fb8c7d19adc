package state

import (
	"strings"

	"github.com/atomicstack/totem/internal/vault"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// CodePlaceholder stands in for a code whose computation failed; the render
// pass never aborts on a single malformed secret.
const CodePlaceholder = "ERROR"

// Row is the display tuple derived from a credential record. Index points
// back into the store, not into the filtered sequence.
type Row struct {
	Index  int
	Issuer string
	Label  string
	Code   string
}

// CodeSource is the narrow read surface the view needs from the store.
type CodeSource interface {
	Elements() []vault.Record
	CurrentCode(index int) (string, error)
}

// BuildRows projects the store through the query: case-insensitive substring
// matching on issuer or label, store order preserved, empty query keeps all.
func BuildRows(src CodeSource, query string) []Row {
	records := src.Elements()
	needle := strings.ToLower(strings.TrimSpace(query))
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.Issuer), needle) &&
			!strings.Contains(strings.ToLower(rec.Label), needle) {
			continue
		}
		code, err := src.CurrentCode(i)
		if err != nil {
			code = CodePlaceholder
		}
		rows = append(rows, Row{Index: i, Issuer: rec.Issuer, Label: rec.Label, Code: code})
	}
	return rows
}

// BestMatchIndex returns the row the cursor should land on after a query
// change: exact label match first, then prefix, then fuzzy rank.
func BestMatchIndex(rows []Row, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(rows) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Label, trimmed) || strings.EqualFold(row.Issuer, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Label), lower) ||
			strings.HasPrefix(strings.ToLower(row.Issuer), lower) {
			return i
		}
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Issuer + " " + row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return 0
	}
	return best.OriginalIndex
}
