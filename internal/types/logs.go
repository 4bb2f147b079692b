package types

// IndexLink is one dated entry extracted from the log archive index, in the
// order it appears there. Date and Href are taken verbatim from the source
// markdown.
type IndexLink struct {
	Date string
	Href string
}
