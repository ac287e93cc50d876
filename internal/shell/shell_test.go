package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bigredeye/studreg/internal/models"
	"github.com/bigredeye/studreg/internal/registry"
)

func runShell(t *testing.T, store *registry.Store, input string) string {
	t.Helper()
	out := &bytes.Buffer{}
	sh := New(store, store.Path(), strings.NewReader(input), out, zap.NewNop())
	if err := sh.Run(); err != nil {
		t.Fatalf("Shell failed: %v", err)
	}
	return out.String()
}

func newStore(t *testing.T) *registry.Store {
	t.Helper()
	store, err := registry.New(filepath.Join(t.TempDir(), "students.txt"), zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func expectContains(t *testing.T, output string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(output, part) {
			t.Fatalf("Output does not contain %q:\n%s", part, output)
		}
	}
}

func TestEnrollFindAndDuplicate(t *testing.T) {
	store := newStore(t)
	input := strings.Join([]string{
		"1", "Asha", "101", "secret1", "Math, Physics",
		"3", "101",
		"1", "Someone", "101", "x", "",
		"2",
		"4",
	}, "\n") + "\n"

	output := runShell(t, store, input)
	expectContains(t, output,
		"Student enrolled & saved successfully!",
		"Student Found!",
		"Courses: Math,Physics",
		"Password (via getter): secret1",
		"Roll already exists! Enrollment failed.",
		"Exiting... Data is saved in "+store.Path(),
	)

	students, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(students) != 1 || students[0].Name != "Asha" {
		t.Fatalf("Expected only Asha, got %v", students)
	}
}

func TestEmptyRegistry(t *testing.T) {
	store := newStore(t)
	output := runShell(t, store, "2\n3\n42\n4\n")
	expectContains(t, output, msgNoStudents, msgNotFound)
}

func TestEnrollWithoutCourses(t *testing.T) {
	store := newStore(t)
	output := runShell(t, store, "1\nRavi\n102\npw\n\n2\n4\n")
	expectContains(t, output, "Courses: None")

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("Failed to read registry: %v", err)
	}
	if string(data) != "102|Ravi||pw\n" {
		t.Fatalf("Unexpected registry content: %q", data)
	}
}

func TestInvalidChoiceAndEOF(t *testing.T) {
	store := newStore(t)
	output := runShell(t, store, "9\n")
	expectContains(t, output, "Invalid choice. Please select 1-4.", "Exiting...")
}

func TestRejectsInvalidStudent(t *testing.T) {
	store := newStore(t)
	output := runShell(t, store, "1\nAsha\n\npw\nMath\n4\n")
	expectContains(t, output, "Enrollment failed:")

	students, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(students) != 0 {
		t.Fatalf("Expected no students, got %v", students)
	}
}

func TestRenderAllSeparators(t *testing.T) {
	students := []*models.Student{
		models.NewStudent("Asha", "101", nil, "a"),
		models.NewStudent("Ravi", "102", nil, "b"),
	}
	out := &bytes.Buffer{}
	count, err := RenderAll(out, func(fn func(*models.Student) error) error {
		for _, s := range students {
			if err := fn(s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 records, got %d", count)
	}
	if n := strings.Count(out.String(), separator); n != 3 {
		t.Fatalf("Expected 3 separators, got %d", n)
	}
}
