package schedule

// Document is the id/title/URL triple returned by the document collaborator.
type Document struct {
	ID    string
	Title string
	URL   string
}

// DocumentStore creates content documents that placed slots link to. The
// concrete store (remote docs service, local files) lives outside this core.
type DocumentStore interface {
	CreateDocument(title, content string) (Document, error)
}
