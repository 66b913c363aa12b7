// Package app provides application lifecycle management, shared state, and
// the event bus connecting the canvas editor's services.
package app

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
)

// EventType identifies different application events.
type EventType int

const (
	// EventSelectionChanged fires on every selection mutation.
	EventSelectionChanged EventType = iota
	// EventComponentsMoved fires when a drag commits.
	EventComponentsMoved
	// EventComponentsPasted fires after a paste places new components.
	EventComponentsPasted
	// EventComponentsDeleted fires after components are removed.
	EventComponentsDeleted
	// EventComponentsBatchUpdated fires when a multi-selection edit applies
	// one property across several components.
	EventComponentsBatchUpdated
	// EventColorChanged fires when an interaction or edit changes a color
	// property.
	EventColorChanged
	// EventDocumentReplaced fires when a new canvas document is loaded.
	EventDocumentReplaced
	// EventPropertiesRescanned fires after the mapper rebuilds its maps.
	EventPropertiesRescanned
	// EventModified fires when the dirty flag changes.
	EventModified
	// EventNotification carries transient user-facing messages.
	EventNotification
)

// SelectionChangedData is the payload of EventSelectionChanged.
type SelectionChangedData struct {
	Components []*component.Component
	Count      int
}

// MovedComponent records one component's committed position.
type MovedComponent struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// ComponentsMovedData is the payload of EventComponentsMoved.
type ComponentsMovedData struct {
	Components []MovedComponent
}

// ComponentsPastedData is the payload of EventComponentsPasted.
type ComponentsPastedData struct {
	Components []*component.Component
	Count      int
}

// ComponentsDeletedData is the payload of EventComponentsDeleted.
type ComponentsDeletedData struct {
	DeletedCount int
	ComponentIDs []string
}

// BatchUpdateData is the payload of EventComponentsBatchUpdated.
type BatchUpdateData struct {
	ComponentIDs []string
	Property     string
	Value        string
}

// ColorChangedData is the payload of EventColorChanged.
type ColorChangedData struct {
	ElementID string
	Property  string
	Value     string
}

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the shared editor state: the canvas document, the dirty flag,
// and the event bus every service publishes to. Services receive the State
// by constructor injection; there are no package-level singletons.
type State struct {
	mu sync.RWMutex

	doc          *svgdom.Document
	DocumentPath string
	Modified     bool

	listeners map[EventType][]EventListener
}

// NewState creates editor state with an empty default canvas.
func NewState() *State {
	root := svgdom.NewElement("svg")
	root.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	root.SetAttr("width", "800")
	root.SetAttr("height", "600")

	s := &State{listeners: make(map[EventType][]EventListener)}
	s.doc = svgdom.NewDocument(root)
	return s
}

// Document returns the current canvas document.
func (s *State) Document() *svgdom.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// SetDocument replaces the canvas document and emits EventDocumentReplaced.
func (s *State) SetDocument(doc *svgdom.Document) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	s.Emit(EventDocumentReplaced, doc)
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the document as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	changed := s.Modified != modified
	s.Modified = modified
	s.mu.Unlock()
	if changed {
		s.Emit(EventModified, modified)
	}
}

// Notify surfaces a transient user-facing message. Failures in this editor
// are absorbed and reported this way rather than propagated (empty clipboard,
// deleted counts, load errors).
func (s *State) Notify(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	s.Emit(EventNotification, msg)
}

// LoadDocument reads a canvas SVG file and installs it as the document.
func (s *State) LoadDocument(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open canvas: %w", err)
	}
	defer f.Close()

	doc, err := svgdom.Parse(f)
	if err != nil {
		return fmt.Errorf("parse canvas %s: %w", path, err)
	}

	s.mu.Lock()
	s.DocumentPath = path
	s.Modified = false
	s.doc = doc
	s.mu.Unlock()

	s.Emit(EventDocumentReplaced, doc)
	return nil
}

// SaveDocument serializes the canvas document to path. The SVG itself is the
// only persistence format: everything lives in element attributes.
func (s *State) SaveDocument(path string) error {
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create canvas file: %w", err)
	}
	defer f.Close()

	if err := doc.Serialize(f); err != nil {
		return fmt.Errorf("write canvas: %w", err)
	}

	s.mu.Lock()
	s.DocumentPath = path
	s.Modified = false
	s.mu.Unlock()
	return nil
}
