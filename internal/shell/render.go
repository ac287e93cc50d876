package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/bigredeye/studreg/internal/models"
)

const (
	separatorWidth = 60

	msgNoStudents = "No students found (file is empty)."
	msgNotFound   = "No student found with this roll."
	msgNoCourses  = "None"
)

var separator = strings.Repeat("-", separatorWidth)

// RenderStudent prints one record the way every listing shows it.
func RenderStudent(w io.Writer, student *models.Student) {
	courses := student.CoursesString()
	if len(student.Courses) == 0 {
		courses = msgNoCourses
	}
	fmt.Fprintf(w, "Roll: %s\n", student.Roll)
	fmt.Fprintf(w, "Name: %s\n", student.Name)
	fmt.Fprintf(w, "Courses: %s\n", courses)
	fmt.Fprintf(w, "Password (via getter): %s\n", student.Password())
}

// RenderAll streams every record with separators between them and reports
// how many were printed. An empty registry gets its own message.
func RenderAll(w io.Writer, each func(fn func(*models.Student) error) error) (int, error) {
	fmt.Fprintln(w, "\nAll Students List:")
	fmt.Fprintln(w, separator)

	count := 0
	err := each(func(student *models.Student) error {
		count++
		RenderStudent(w, student)
		fmt.Fprintln(w, separator)
		return nil
	})
	if err != nil {
		return count, err
	}

	if count == 0 {
		fmt.Fprintln(w, msgNoStudents)
		fmt.Fprintln(w, separator)
	}
	return count, nil
}

func RenderFound(w io.Writer, student *models.Student) {
	if student == nil {
		fmt.Fprintln(w, msgNotFound)
		return
	}
	fmt.Fprintln(w, "\nStudent Found!")
	RenderStudent(w, student)
}
