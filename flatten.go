package leadgen

import (
	"strconv"
	"strings"
)

// LinkSeparator joins a record's links into a single display string.
const LinkSeparator = ", "

// ExportColumns is the fixed header order for tabular export.
var ExportColumns = []string{
	"Website URL",
	"Username",
	"Bio",
	"Post Type",
	"Timestamp",
	"Upvotes",
	"Links",
}

// Flatten converts per-source extraction results into a flat sequence of
// export-ready rows. It is a pure transform: source order is preserved, and
// within a source the interactions appear in extraction-response order.
// A source with no interactions contributes no rows. Negative upvote counts
// are clamped to zero.
func Flatten(results []*SourceResult) []FlatRow {
	rows := make([]FlatRow, 0)
	for _, result := range results {
		for _, in := range result.Interactions {
			upvotes := in.Upvotes
			if upvotes < 0 {
				upvotes = 0
			}
			rows = append(rows, FlatRow{
				URL:       result.URL,
				Username:  in.Username,
				Bio:       in.Bio,
				PostType:  in.PostType,
				Timestamp: in.Timestamp,
				Upvotes:   upvotes,
				Links:     strings.Join(in.Links, LinkSeparator),
			})
		}
	}
	return rows
}

// Fields returns the row's values in ExportColumns order.
func (r FlatRow) Fields() []string {
	return []string{
		r.URL,
		r.Username,
		r.Bio,
		r.PostType,
		r.Timestamp,
		strconv.Itoa(r.Upvotes),
		r.Links,
	}
}
