package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rolodex/rolo/internal/book"
	"github.com/rolodex/rolo/internal/ui"
)

func TestMain(m *testing.M) {
	// Compare raw bytes in assertions.
	ui.SetEnabled(false)
	os.Exit(m.Run())
}

// runSession feeds the shell a scripted input and returns the captured
// output plus the store for state assertions.
func runSession(t *testing.T, input string) (string, *book.Store) {
	t.Helper()

	dir := t.TempDir()
	store := book.Open(filepath.Join(dir, "contacts.json"))
	return runSessionWith(t, store, filepath.Join(dir, "contacts_export.csv"), input), store
}

func runSessionWith(t *testing.T, store *book.Store, exportPath, input string) string {
	t.Helper()

	var out bytes.Buffer
	New(store, strings.NewReader(input), &out, exportPath, nil).Run()
	return out.String()
}

func TestRun_QuitImmediately(t *testing.T) {
	out, _ := runSession(t, "Q\n")

	for _, want := range []string{
		"Welcome to your Contact Book !",
		"=== CONTACT BOOK MENU ===",
		"A - Add contact",
		"Q - Quit",
		"Goodbye — your contacts are saved.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_QuitIsCaseInsensitive(t *testing.T) {
	out, _ := runSession(t, "q\n")
	if !strings.Contains(out, "Goodbye") {
		t.Errorf("lower-case quit not accepted:\n%s", out)
	}
}

func TestRun_UnknownOptionRedisplaysMenu(t *testing.T) {
	out, _ := runSession(t, "X\nQ\n")

	if !strings.Contains(out, "The option is Unknown. Please try again.") {
		t.Errorf("missing unknown-option message:\n%s", out)
	}
	if got := strings.Count(out, "=== CONTACT BOOK MENU ==="); got != 2 {
		t.Errorf("menu shown %d times, want 2:\n%s", got, out)
	}
}

func TestRun_InputExhaustedEndsLoop(t *testing.T) {
	// No trailing Q: the loop must end instead of spinning.
	out, _ := runSession(t, "V\n")
	if !strings.Contains(out, "No contacts yet.") {
		t.Errorf("V action did not run:\n%s", out)
	}
}

func TestAdd(t *testing.T) {
	out, store := runSession(t, "A\nAnn\n555\n\n\nQ\n")

	for _, want := range []string{
		"Name: ", "Phone: ", "Email (optional): ", "Note (optional): ",
		"Contact added.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	all := store.ListAll()
	if len(all) != 1 {
		t.Fatalf("store holds %d contacts, want 1", len(all))
	}
	want := book.Contact{Name: "Ann", Phone: "555", Email: "N/A", Note: "N/A"}
	if all[0] != want {
		t.Errorf("stored contact = %+v, want %+v", all[0], want)
	}
}

func TestAdd_RequiredFieldsMissing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "blank name", input: "A\n\n555\n\n\nQ\n"},
		{name: "blank phone", input: "A\nAnn\n\n\n\nQ\n"},
		{name: "whitespace only", input: "A\n   \n555\n\n\nQ\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, store := runSession(t, tt.input)
			if !strings.Contains(out, "Name and phone are required.") {
				t.Errorf("missing required-field message:\n%s", out)
			}
			if store.Len() != 0 {
				t.Errorf("store holds %d contacts after aborted add, want 0", store.Len())
			}
		})
	}
}

func TestView(t *testing.T) {
	out, _ := runSession(t, "V\nA\nAnn\n555\nann@x.com\nfriend\nV\nQ\n")

	if !strings.Contains(out, "No contacts yet.") {
		t.Errorf("empty view message missing:\n%s", out)
	}
	if !strings.Contains(out, "\nAll Contacts:\n1. Ann | 555 | ann@x.com | friend\n") {
		t.Errorf("numbered listing missing:\n%s", out)
	}
}

func TestSearch(t *testing.T) {
	seed := "A\nAnn\n555\n\n\nA\nBob\nABC123\nBob@X.com\n\n"

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "name hit", query: "bob", want: "Found 1 result(s):\n1. Bob | ABC123 | Bob@X.com | N/A\n"},
		{name: "phone exact case", query: "ABC", want: "Found 1 result(s):"},
		{name: "phone wrong case", query: "abc123", want: "No matches found."},
		{name: "no hit", query: "zzz", want: "No matches found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := runSession(t, seed+"S\n"+tt.query+"\nQ\n")
			if !strings.Contains(out, tt.want) {
				t.Errorf("search %q output missing %q:\n%s", tt.query, tt.want, out)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	// Blank name keeps Carl, phone replaced with 999.
	out, store := runSession(t, "A\nCarl\n555\n\n\nU\n1\n\n999\n\n\nQ\n")

	for _, want := range []string{
		"1. Carl | 555",
		"Enter contact number to update: ",
		"Leave blank to keep current value.",
		"New name [Carl]: ",
		"New phone [555]: ",
		"New email [N/A]: ",
		"New note [N/A]: ",
		"Updated.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	got := store.ListAll()[0]
	if got.Name != "Carl" || got.Phone != "999" {
		t.Errorf("updated contact = %+v, want Carl/999", got)
	}
}

func TestUpdate_InvalidSelections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty store", input: "U\nQ\n", want: "No contacts to update."},
		{name: "non-numeric", input: "A\nAnn\n555\n\n\nU\nabc\nQ\n", want: "Invalid number."},
		{name: "zero", input: "A\nAnn\n555\n\n\nU\n0\nQ\n", want: "Invalid index."},
		{name: "too large", input: "A\nAnn\n555\n\n\nU\n2\nQ\n", want: "Invalid index."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, store := runSession(t, tt.input)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
			if store.Len() == 1 {
				got := store.ListAll()[0]
				if got.Name != "Ann" || got.Phone != "555" {
					t.Errorf("aborted update mutated the store: %+v", got)
				}
			}
		})
	}
}

func TestDelete(t *testing.T) {
	out, store := runSession(t, "A\nAnn\n555\n\n\nA\nBob\n556\n\n\nD\n1\nQ\n")

	if !strings.Contains(out, "Enter contact number to delete: ") {
		t.Errorf("delete prompt missing:\n%s", out)
	}
	if !strings.Contains(out, "Deleted Ann.") {
		t.Errorf("delete confirmation missing:\n%s", out)
	}

	all := store.ListAll()
	if len(all) != 1 || all[0].Name != "Bob" {
		t.Errorf("store after delete = %+v, want only Bob", all)
	}
}

func TestDelete_InvalidSelections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty store", input: "D\nQ\n", want: "No contacts to delete."},
		{name: "non-numeric", input: "A\nAnn\n555\n\n\nD\nxx\nQ\n", want: "Invalid number."},
		{name: "out of range", input: "A\nAnn\n555\n\n\nD\n9\nQ\n", want: "Delete failed. Check index."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := runSession(t, tt.input)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	store := book.Open(filepath.Join(dir, "contacts.json"))
	exportPath := filepath.Join(dir, "contacts_export.csv")

	out := runSessionWith(t, store, exportPath, "A\nAnn\n555\n\n\nE\nQ\n")

	if !strings.Contains(out, "Exported 1 contacts to "+exportPath) {
		t.Errorf("export confirmation missing:\n%s", out)
	}

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("reading export file: %v", err)
	}
	want := "Name,Phone,Email,Note\nAnn,555,N/A,N/A\n"
	if string(data) != want {
		t.Errorf("export file = %q, want %q", data, want)
	}
}

func TestExport_Failure(t *testing.T) {
	dir := t.TempDir()
	store := book.Open(filepath.Join(dir, "contacts.json"))
	exportPath := filepath.Join(dir, "missing", "contacts_export.csv")

	out := runSessionWith(t, store, exportPath, "E\nQ\n")

	if !strings.Contains(out, "Could not export contacts:") {
		t.Errorf("export failure message missing:\n%s", out)
	}
	// The loop continues after a failed export.
	if !strings.Contains(out, "Goodbye") {
		t.Errorf("loop did not continue to quit:\n%s", out)
	}
}

func TestAdd_SaveFailureReported(t *testing.T) {
	store := book.Open(filepath.Join(t.TempDir(), "missing", "contacts.json"))

	out := runSessionWith(t, store, "contacts_export.csv", "A\nAnn\n555\n\n\nQ\n")

	if !strings.Contains(out, "Could not save contacts:") {
		t.Errorf("save failure message missing:\n%s", out)
	}
}
