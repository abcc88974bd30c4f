package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/state"
)

// Session element and attribute names.
const (
	sessionElement     = "session"
	fileElement        = "file"
	editorStateElement = "editor_state"
	pathAttr           = "path"
	providerAttr       = "provider"
)

// Session persists the states of open editors across runs as an XML
// document: one "file" child per open file, each holding the owning
// provider's serialized "editor_state".
type Session struct {
	registry *editor.Registry
}

// NewSession creates a session codec over the registry.
func NewSession(registry *editor.Registry) *Session {
	return &Session{registry: registry}
}

// Save writes the states of the given editors to path. Editors whose
// provider is no longer registered are skipped.
func (s *Session) Save(path string, editors []editor.Editor) error {
	root := state.NewElement(sessionElement)

	for _, ed := range editors {
		p, err := s.registry.Provider(ed.TypeID())
		if err != nil {
			continue
		}

		fileElem := root.NewChild(fileElement)
		fileElem.SetAttr(pathAttr, ed.File().Path)
		fileElem.SetAttr(providerAttr, ed.TypeID())

		stateElem := fileElem.NewChild(editorStateElement)
		if err := p.WriteState(ed.State(), ed.File(), stateElem); err != nil {
			return fmt.Errorf("app: save state for %s: %w", ed.File().Path, err)
		}
	}

	data, err := root.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Entry is one restored session entry.
type Entry struct {
	File     editor.File
	Provider editor.Provider
	State    editor.State
}

// Load reads a session file and deserializes each entry through its
// provider. Entries whose provider is not registered are skipped; a
// missing session file yields an empty session.
func (s *Session) Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	root, err := state.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("app: parse session %s: %w", path, err)
	}

	var entries []Entry
	for _, fileElem := range root.Children() {
		if fileElem.Name() != fileElement {
			continue
		}
		file := editor.File{Path: fileElem.AttrOr(pathAttr, "")}
		if file.Path == "" {
			continue
		}
		p, err := s.registry.Provider(fileElem.AttrOr(providerAttr, ""))
		if err != nil {
			continue
		}

		entry := Entry{File: file, Provider: p}
		if stateElem := fileElem.Child(editorStateElement); stateElem != nil {
			st, err := p.ReadState(stateElem, file)
			if err != nil {
				return nil, fmt.Errorf("app: read state for %s: %w", file.Path, err)
			}
			entry.State = st
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
