package tbptt

// noDocument marks a lane with no current document.
const noDocument = -1

// lane is one of BatchSize parallel cursors. It holds an index handle
// into the corpus rather than a pointer so reassignment is allocation
// free. A lane with doc == noDocument is retired for the rest of the
// epoch: it never re-activates until the next Reset.
type lane struct {
	// doc is the corpus index of the current document, or noDocument.
	doc int

	// cursor is the next unread step, 0 <= cursor <= document length.
	cursor int

	// justStarted is true until the first chunk of the current document
	// has been emitted.
	justStarted bool
}

func (l *lane) retired() bool {
	return l.doc == noDocument
}

// assign binds the lane to a document and rewinds it.
func (l *lane) assign(doc int) {
	l.doc = doc
	l.cursor = 0
	l.justStarted = true
}

// retire detaches the lane for the remainder of the epoch.
func (l *lane) retire() {
	l.doc = noDocument
	l.cursor = 0
	l.justStarted = false
}
