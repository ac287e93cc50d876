package models

import "strings"

type Course struct {
	Name string
}

func NewCourse(name string) Course {
	return Course{Name: strings.TrimSpace(name)}
}

func (c Course) String() string {
	return c.Name
}

// ParseCourses splits a comma separated list of course names.
// Blank input yields an empty, non-nil list.
func ParseCourses(list string) []Course {
	courses := []Course{}
	if strings.TrimSpace(list) == "" {
		return courses
	}
	for _, name := range strings.Split(list, ",") {
		courses = append(courses, NewCourse(name))
	}
	return courses
}
