package pagemd

// Page is one fetched and converted source page produced by a batch run.
type Page struct {
	URL    string
	Title  string
	Result *Result
}

// Progress reports per-URL progress during a batch run.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as batch pages are processed.
type ProgressFunc func(Progress)
