package leadgen

// Interaction represents one user post or answer found on a source page.
// All fields are optional in the extraction response; absent values default
// to the zero value shown here rather than failing the record.
type Interaction struct {
	// Username of the person who posted. May be empty if unknown.
	Username string `json:"username"`

	// Bio is the user's profile bio.
	Bio string `json:"bio"`

	// PostType is "question" or "answer" by convention, but the extraction
	// service may return other values and they pass through unchanged.
	PostType string `json:"post_type"`

	// Timestamp is the time of posting as free-form text.
	Timestamp string `json:"timestamp"`

	// Upvotes is never negative. Missing or non-numeric values coerce to 0.
	Upvotes int `json:"upvotes"`

	// Links found in the post, in document order.
	Links []string `json:"links"`
}

// SourceResult groups the interactions extracted from one source page.
// Only URLs whose extraction completed successfully produce a SourceResult;
// a page with no interactions still produces one with an empty list.
type SourceResult struct {
	URL          string        `json:"url"`
	Interactions []Interaction `json:"interactions"`
}

// Validate returns an error if the source result contains invalid fields.
func (r *SourceResult) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "source result URL required")
	}
	return nil
}

// FlatRow is one export-ready tabular record: a single interaction tagged
// with its source URL, with links joined into a display string.
type FlatRow struct {
	URL       string `json:"Website URL"`
	Username  string `json:"Username"`
	Bio       string `json:"Bio"`
	PostType  string `json:"Post Type"`
	Timestamp string `json:"Timestamp"`
	Upvotes   int    `json:"Upvotes"`
	Links     string `json:"Links"`
}
