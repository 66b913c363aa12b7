package svgdom

// MutationKind classifies a recorded document mutation.
type MutationKind int

const (
	MutationAttr MutationKind = iota
	MutationChildAdded
	MutationChildRemoved
)

// Mutation describes a single change to the document.
type Mutation struct {
	Kind   MutationKind
	Target *Element // element whose attribute changed, or parent for tree changes
	Attr   string   // attribute name for MutationAttr
	Child  *Element // affected child for tree changes
}

// Observer receives one coalesced batch of mutations per flush.
type Observer func(batch []Mutation)

// Document owns an element tree and collects mutations for observers.
// Mutations accumulate as elements are changed and are delivered once per
// Flush call, so a burst of edits triggers a single observer pass. This is
// the explicit dirty-then-rescan queue the editor relies on instead of a
// timing-based debounce.
type Document struct {
	root      *Element
	pending   []Mutation
	observers []Observer
}

// NewDocument creates a document rooted at root. A nil root gets a default
// <svg> element.
func NewDocument(root *Element) *Document {
	if root == nil {
		root = NewElement("svg")
	}
	d := &Document{root: root}
	root.parent = nil
	root.setDocument(d)
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// ByID returns the element carrying the given data-id, or nil.
func (d *Document) ByID(id string) *Element {
	var found *Element
	d.root.Walk(func(e *Element) bool {
		if found != nil {
			return false
		}
		if e.Attr("data-id") == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// ElementsWithID returns every descendant carrying a data-id attribute,
// in document order.
func (d *Document) ElementsWithID() []*Element {
	var out []*Element
	d.root.Walk(func(e *Element) bool {
		if e != d.root && e.HasAttr("data-id") {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Observe registers an observer for mutation batches.
func (d *Document) Observe(fn Observer) {
	d.observers = append(d.observers, fn)
}

// Dirty reports whether mutations are pending delivery.
func (d *Document) Dirty() bool {
	return len(d.pending) > 0
}

// Flush delivers all pending mutations to observers as one batch. No-op when
// nothing is pending. Mutations recorded while observers run are queued for
// the next flush, which keeps a rescan from re-entering itself.
func (d *Document) Flush() {
	if len(d.pending) == 0 {
		return
	}
	batch := d.pending
	d.pending = nil
	for _, fn := range d.observers {
		fn(batch)
	}
}

func (d *Document) record(m Mutation) {
	d.pending = append(d.pending, m)
}
