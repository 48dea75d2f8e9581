// Package book implements the contact store: an ordered, file-backed
// collection of contact records with JSON-array persistence.
package book

import "strings"

// Placeholder is stored in place of a blank optional field.
const Placeholder = "N/A"

// Contact represents a single contact record.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Note  string `json:"note"`
}

// NewContact builds a Contact from raw input. All fields are trimmed;
// a blank email or note falls back to the "N/A" placeholder.
// Name and phone are stored as given (trimmed) even when empty; callers
// are expected to validate required fields before adding.
func NewContact(name, phone, email, note string) Contact {
	return Contact{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: orPlaceholder(email),
		Note:  orPlaceholder(note),
	}
}

func orPlaceholder(s string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return Placeholder
}

// matches reports whether the contact matches a search query.
// Name and email are compared case-insensitively against the lowered
// query; phone is compared case-sensitively against the raw trimmed
// query.
func (c Contact) matches(raw, lowered string) bool {
	if strings.Contains(strings.ToLower(c.Name), lowered) {
		return true
	}
	if strings.Contains(c.Phone, raw) {
		return true
	}
	return strings.Contains(strings.ToLower(c.Email), lowered)
}

// FieldUpdates describes a partial update to a contact. A nil field is
// absent; a present field whose trimmed value is blank keeps the current
// value rather than clearing it.
type FieldUpdates struct {
	Name  *string
	Phone *string
	Email *string
	Note  *string
}

// apply overwrites the contact's fields from the update set, honoring
// the blank-keeps-current rule per field.
func (f FieldUpdates) apply(c *Contact) {
	setField(&c.Name, f.Name)
	setField(&c.Phone, f.Phone)
	setField(&c.Email, f.Email)
	setField(&c.Note, f.Note)
}

func setField(dst *string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = v
	}
}

// String returns a pointer to s, for FieldUpdates literals:
// book.FieldUpdates{Name: book.String("Ann")}.
func String(s string) *string {
	return &s
}
