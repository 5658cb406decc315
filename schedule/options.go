package schedule

import "time"

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDocumentStore attaches a document collaborator. When set, each placed
// slot gets a provisioned content document and a hyperlinked write instead of
// a plain value write.
func WithDocumentStore(docs DocumentStore) Option {
	return func(s *Scheduler) { s.docs = docs }
}

// WithLabelTemplate overrides the cell-text template.
func WithLabelTemplate(t *LabelTemplate) Option {
	return func(s *Scheduler) { s.labels = t }
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}
