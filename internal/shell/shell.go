// Package shell implements the interactive contact book menu: a single
// loop that renders a fixed letter menu, collects line-oriented input,
// and dispatches to the contact store.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rolodex/rolo/internal/book"
	"github.com/rolodex/rolo/internal/export"
	"github.com/rolodex/rolo/internal/ui"
)

// Shell drives one interactive session over a contact store. It holds
// no persistent state of its own beyond the default export path.
type Shell struct {
	store      *book.Store
	in         *bufio.Scanner
	out        io.Writer
	exportPath string
	log        *zap.SugaredLogger
}

// New creates a Shell reading menu input from in and writing the dialog
// to out. exportPath is the destination for the export action.
func New(store *book.Store, in io.Reader, out io.Writer, exportPath string, log *zap.SugaredLogger) *Shell {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Shell{
		store:      store,
		in:         bufio.NewScanner(in),
		out:        out,
		exportPath: exportPath,
		log:        log,
	}
}

// Run executes the menu loop until the user quits or input is
// exhausted.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "Welcome to your Contact Book !")

	for {
		s.showMenu()
		choice, ok := s.readLine("Choose an option: ")
		if !ok {
			return
		}

		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case "A":
			s.addContact()
		case "V":
			s.viewContacts()
		case "S":
			s.searchContacts()
		case "U":
			s.updateContact()
		case "D":
			s.deleteContact()
		case "E":
			s.exportContacts()
		case "Q":
			fmt.Fprintln(s.out, "Goodbye — your contacts are saved.")
			return
		default:
			fmt.Fprintln(s.out, "The option is Unknown. Please try again.")
		}
	}
}

func (s *Shell) showMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.RenderAccent("=== CONTACT BOOK MENU ==="))
	fmt.Fprintln(s.out, "A - Add contact")
	fmt.Fprintln(s.out, "V - View all contacts")
	fmt.Fprintln(s.out, "S - Search contact")
	fmt.Fprintln(s.out, "U - Update contact")
	fmt.Fprintln(s.out, "D - Delete contact")
	fmt.Fprintln(s.out, "E - Export contacts")
	fmt.Fprintln(s.out, "Q - Quit")
}

// readLine prints a prompt and reads one trimmed input line. The second
// return value is false when input is exhausted.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readLineDefault prompts with the current value shown as default; a
// blank keystroke reuses the default, matching the store's "blank keeps
// current" update rule.
func (s *Shell) readLineDefault(msg, def string) (string, bool) {
	raw, ok := s.readLine(fmt.Sprintf("%s [%s]: ", msg, def))
	if !ok {
		return "", false
	}
	if raw == "" {
		return def, true
	}
	return raw, true
}

func (s *Shell) addContact() {
	name, ok := s.readLine("Name: ")
	if !ok {
		return
	}
	phone, ok := s.readLine("Phone: ")
	if !ok {
		return
	}
	email, ok := s.readLine("Email (optional): ")
	if !ok {
		return
	}
	note, ok := s.readLine("Note (optional): ")
	if !ok {
		return
	}

	if name == "" || phone == "" {
		fmt.Fprintln(s.out, ui.RenderWarn("Name and phone are required."))
		return
	}

	if err := s.store.Add(name, phone, email, note); err != nil {
		s.log.Errorw("add failed", "error", err)
		fmt.Fprintf(s.out, "%s\n", ui.RenderErr(fmt.Sprintf("Could not save contacts: %v", err)))
		return
	}
	s.log.Infow("contact added", "name", name)
	fmt.Fprintln(s.out, ui.RenderPass("Contact added."))
}

func (s *Shell) viewContacts() {
	contacts := s.store.ListAll()
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "No contacts yet.")
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "All Contacts:")
	s.printContacts(contacts)
}

func (s *Shell) searchContacts() {
	query, ok := s.readLine("Search by name/phone/email: ")
	if !ok {
		return
	}

	hits := s.store.Search(query)
	if len(hits) == 0 {
		fmt.Fprintln(s.out, "No matches found.")
		return
	}

	fmt.Fprintf(s.out, "Found %d result(s):\n", len(hits))
	s.printContacts(hits)
}

// printContacts renders one 1-based numbered line per contact.
func (s *Shell) printContacts(contacts []book.Contact) {
	for i, c := range contacts {
		fmt.Fprintf(s.out, "%d. %s | %s | %s | %s\n", i+1, c.Name, c.Phone, c.Email, c.Note)
	}
}

// listBrief renders the short name/phone listing used by the update and
// delete dialogs.
func (s *Shell) listBrief(contacts []book.Contact) {
	for i, c := range contacts {
		fmt.Fprintf(s.out, "%d. %s | %s\n", i+1, c.Name, c.Phone)
	}
}

func (s *Shell) updateContact() {
	contacts := s.store.ListAll()
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "No contacts to update.")
		return
	}
	s.listBrief(contacts)

	raw, ok := s.readLine("Enter contact number to update: ")
	if !ok {
		return
	}
	num, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, ui.RenderWarn("Invalid number."))
		return
	}
	idx := num - 1
	if idx < 0 || idx >= len(contacts) {
		fmt.Fprintln(s.out, ui.RenderWarn("Invalid index."))
		return
	}

	current := contacts[idx]
	fmt.Fprintln(s.out, "Leave blank to keep current value.")

	name, ok := s.readLineDefault("New name", current.Name)
	if !ok {
		return
	}
	phone, ok := s.readLineDefault("New phone", current.Phone)
	if !ok {
		return
	}
	email, ok := s.readLineDefault("New email", current.Email)
	if !ok {
		return
	}
	note, ok := s.readLineDefault("New note", current.Note)
	if !ok {
		return
	}

	updated, err := s.store.Update(idx, book.FieldUpdates{
		Name:  &name,
		Phone: &phone,
		Email: &email,
		Note:  &note,
	})
	if err != nil {
		s.log.Errorw("update failed", "index", idx, "error", err)
		fmt.Fprintf(s.out, "%s\n", ui.RenderErr(fmt.Sprintf("Could not save contacts: %v", err)))
		return
	}
	if updated {
		s.log.Infow("contact updated", "index", idx)
		fmt.Fprintln(s.out, ui.RenderPass("Updated."))
	} else {
		fmt.Fprintln(s.out, ui.RenderWarn("Update failed."))
	}
}

func (s *Shell) deleteContact() {
	contacts := s.store.ListAll()
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "No contacts to delete.")
		return
	}
	s.listBrief(contacts)

	raw, ok := s.readLine("Enter contact number to delete: ")
	if !ok {
		return
	}
	num, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, ui.RenderWarn("Invalid number."))
		return
	}

	removed, err := s.store.Delete(num - 1)
	if err != nil {
		s.log.Errorw("delete failed", "index", num-1, "error", err)
		fmt.Fprintf(s.out, "%s\n", ui.RenderErr(fmt.Sprintf("Could not save contacts: %v", err)))
		return
	}
	if removed != nil {
		s.log.Infow("contact deleted", "name", removed.Name)
		fmt.Fprintf(s.out, "Deleted %s.\n", removed.Name)
	} else {
		fmt.Fprintln(s.out, ui.RenderWarn("Delete failed. Check index."))
	}
}

func (s *Shell) exportContacts() {
	contacts := s.store.ListAll()
	if err := export.Write(contacts, export.FormatCSV, s.exportPath); err != nil {
		s.log.Errorw("export failed", "path", s.exportPath, "error", err)
		fmt.Fprintf(s.out, "%s\n", ui.RenderErr(fmt.Sprintf("Could not export contacts: %v", err)))
		return
	}
	s.log.Infow("contacts exported", "path", s.exportPath, "count", len(contacts))
	fmt.Fprintf(s.out, "Exported %d contacts to %s\n", len(contacts), s.exportPath)
}
