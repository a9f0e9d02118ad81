package domain

// Dictation is the user input a structure document is assembled from.
type Dictation struct {
	Title          string     `json:"title"`
	FirstLanguage  string     `json:"firstLanguage"`
	SecondLanguage string     `json:"secondLanguage"`
	WordPairs      []WordPair `json:"wordPairs"`
}

// DefaultDescription is the album description used when no intro text is
// available.
func (d Dictation) DefaultDescription() string {
	return d.FirstLanguage + " - " + d.SecondLanguage + " dictation"
}
