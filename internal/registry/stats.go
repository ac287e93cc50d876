package registry

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/bigredeye/studreg/internal/models"
)

type Stats struct {
	Students  int
	Malformed int
	Courses   []string
	SizeBytes int64
}

func (s *Store) Stats() (*Stats, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to stat registry")
	}

	stats := &Stats{SizeBytes: info.Size(), Courses: []string{}}
	stats.Malformed, err = s.scan(func(student *models.Student) error {
		stats.Students++
		for _, name := range student.CourseNames() {
			if name != "" && !slices.Contains(stats.Courses, name) {
				stats.Courses = append(stats.Courses, name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(stats.Courses)
	return stats, nil
}
