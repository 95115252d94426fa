package model

// PageTypePage is the Confluence content type of a regular page.
const PageTypePage = "page"

// Page is the state of a Confluence page relevant to an update.
type Page struct {
	ID      string
	Type    string
	Title   string
	Version int
}

// PageUpdate is a full replacement of a page's body.
type PageUpdate struct {
	ID      string
	Type    string
	Title   string
	Version int
	Body    string
}
