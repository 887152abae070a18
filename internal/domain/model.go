package domain

// SaveEntry is one line of the save history kept beside the catalog file.
type SaveEntry struct {
	Timestamp    string `json:"timestamp"`
	CatalogFile  string `json:"catalog_file"`
	ProductCount int    `json:"product_count"`
	CommitHash   string `json:"commit_hash,omitempty"`
}

// ShortHash returns the abbreviated commit hash, or "" when none was recorded.
func (e SaveEntry) ShortHash() string {
	if len(e.CommitHash) > 7 {
		return e.CommitHash[:7]
	}
	return e.CommitHash
}
