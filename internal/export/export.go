// Package export writes contact lists to interchange formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rolodex/rolo/internal/book"
)

// Format identifies an export file format.
type Format string

const (
	// FormatCSV is the default: header row Name,Phone,Email,Note plus
	// one row per contact, standard CSV quoting.
	FormatCSV Format = "csv"
	// FormatJSON mirrors the persistence format: a pretty-printed JSON
	// array with non-ASCII kept literal.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence of contact mappings.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from user input.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV, FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv, json, or yaml)", name)
	}
}

// Write renders contacts in the given format to filename. The file is
// replaced wholesale on every export.
func Write(contacts []book.Contact, format Format, filename string) error {
	data, err := Marshal(contacts, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", filename, err)
	}
	return nil
}

// Marshal renders contacts in the given format.
func Marshal(contacts []book.Contact, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return marshalCSV(contacts)
	case FormatJSON:
		return marshalJSON(contacts)
	case FormatYAML:
		return marshalYAML(contacts)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

func marshalCSV(contacts []book.Contact) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Phone", "Email", "Note"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range contacts {
		if err := w.Write([]string{c.Name, c.Phone, c.Email, c.Note}); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for %s: %w", c.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func marshalJSON(contacts []book.Contact) ([]byte, error) {
	if contacts == nil {
		contacts = []book.Contact{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contacts); err != nil {
		return nil, fmt.Errorf("failed to marshal contacts: %w", err)
	}
	return buf.Bytes(), nil
}

func marshalYAML(contacts []book.Contact) ([]byte, error) {
	type yamlContact struct {
		Name  string `yaml:"name"`
		Phone string `yaml:"phone"`
		Email string `yaml:"email"`
		Note  string `yaml:"note"`
	}

	out := make([]yamlContact, len(contacts))
	for i, c := range contacts {
		out[i] = yamlContact{Name: c.Name, Phone: c.Phone, Email: c.Email, Note: c.Note}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contacts: %w", err)
	}
	return data, nil
}
