package book

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Store is the in-memory ordered collection of contacts plus its
// file-backed persistence. The in-memory sequence and the on-disk file
// are synchronized after every successful mutation: the store loads the
// file once at construction and rewrites the whole file after each
// write. A contact's identity is its position in the sequence, which
// shifts on delete.
//
// Store is not safe for concurrent use; it is built for a single
// interactive session.
type Store struct {
	path     string
	contacts []Contact
}

// Open creates a Store backed by the JSON file at path. A missing,
// unreadable, or malformed file yields an empty store; load failures
// are never surfaced.
func Open(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

// Path returns the persistence file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of contacts in the store.
func (s *Store) Len() int {
	return len(s.contacts)
}

// load reads the persistence file. Anything short of a parseable JSON
// array (missing file, bad JSON, wrong top-level type) leaves the store
// empty so a corrupted file never blocks startup.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var contacts []Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return
	}
	s.contacts = contacts
}

// save rewrites the whole persistence file from the in-memory sequence.
// Output is a pretty-printed JSON array with non-ASCII characters kept
// literal. The write goes through a temp file and rename so a crash
// mid-write cannot corrupt the previous state.
func (s *Store) save() error {
	contacts := s.contacts
	if contacts == nil {
		contacts = []Contact{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contacts); err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Add appends a new contact and persists. Inputs are trimmed and blank
// optional fields default to "N/A"; empty name or phone is accepted
// as-is, validation is the caller's job. The returned error is a save
// failure only.
func (s *Store) Add(name, phone, email, note string) error {
	s.contacts = append(s.contacts, NewContact(name, phone, email, note))
	return s.save()
}

// ListAll returns a copy of the current sequence in insertion order.
// Mutating the returned slice does not affect store state.
func (s *Store) ListAll() []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Search returns all contacts matching the query, in original order.
// The query is trimmed, then matched as a case-insensitive substring of
// name or email and a case-sensitive substring of phone.
func (s *Store) Search(query string) []Contact {
	raw := strings.TrimSpace(query)
	lowered := strings.ToLower(raw)

	var hits []Contact
	for _, c := range s.contacts {
		if c.matches(raw, lowered) {
			hits = append(hits, c)
		}
	}
	return hits
}

// Update applies a partial update to the contact at index and persists.
// It returns false without touching the file when index is out of
// range. A provided field whose trimmed value is blank keeps the
// current value; an update where every provided value is blank still
// counts as success and still persists.
func (s *Store) Update(index int, fields FieldUpdates) (bool, error) {
	if index < 0 || index >= len(s.contacts) {
		return false, nil
	}

	fields.apply(&s.contacts[index])
	if err := s.save(); err != nil {
		return true, err
	}
	return true, nil
}

// Delete removes and returns the contact at index, shifting subsequent
// indices down by one, and persists. It returns nil without touching
// the file when index is out of range.
func (s *Store) Delete(index int) (*Contact, error) {
	if index < 0 || index >= len(s.contacts) {
		return nil, nil
	}

	removed := s.contacts[index]
	s.contacts = append(s.contacts[:index], s.contacts[index+1:]...)
	if err := s.save(); err != nil {
		return &removed, err
	}
	return &removed, nil
}
