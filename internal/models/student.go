package models

import (
	"fmt"
	"strings"
)

const (
	FieldSeparator  = "|"
	CourseSeparator = ","

	numLineFields = 4
)

type Student struct {
	Roll    string   `validate:"required,linesafe"`
	Name    string   `validate:"linesafe"`
	Courses []Course `validate:"-"`

	// Stored as is, no hashing. Use Password and SetPassword.
	password string
}

func NewStudent(name, roll string, courses []Course, password string) *Student {
	if courses == nil {
		courses = []Course{}
	}
	return &Student{
		Roll:     strings.TrimSpace(roll),
		Name:     strings.TrimSpace(name),
		Courses:  courses,
		password: password,
	}
}

func (s *Student) Password() string {
	return s.password
}

func (s *Student) SetPassword(password string) {
	s.password = password
}

// Clone returns a deep copy, sharing nothing with s.
func (s *Student) Clone() *Student {
	clone := *s
	clone.Courses = append([]Course{}, s.Courses...)
	return &clone
}

func (s *Student) AddCourse(course Course) {
	s.Courses = append(s.Courses, course)
}

func (s *Student) CourseNames() []string {
	names := make([]string, 0, len(s.Courses))
	for _, course := range s.Courses {
		names = append(names, course.Name)
	}
	return names
}

func (s *Student) CoursesString() string {
	return strings.Join(s.CourseNames(), CourseSeparator)
}

// Line renders the student as one record of the registry file:
//
//	roll|name|course1,course2|password
//
// Nothing is escaped, so separators inside fields break the round trip.
func (s *Student) Line() string {
	return fmt.Sprintf("%s|%s|%s|%s\n", s.Roll, s.Name, s.CoursesString(), s.password)
}

// ParseLine is the inverse of Line. It reports false for lines with fewer
// than four fields, those are skipped by readers rather than rejected.
func ParseLine(line string) (*Student, bool) {
	parts := strings.Split(strings.TrimSpace(line), FieldSeparator)
	if len(parts) < numLineFields {
		return nil, false
	}

	roll, name, courses, password := parts[0], parts[1], parts[2], parts[3]
	return NewStudent(name, roll, ParseCourses(courses), password), true
}
