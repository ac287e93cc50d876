// Package dump exports registry records in machine readable formats.
package dump

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"github.com/bigredeye/studreg/internal/models"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Record struct {
	Roll     string   `yaml:"roll" json:"roll"`
	Name     string   `yaml:"name" json:"name"`
	Courses  []string `yaml:"courses" json:"courses"`
	Password string   `yaml:"password" json:"password"`
}

func NewRecord(student *models.Student) Record {
	return Record{
		Roll:     student.Roll,
		Name:     student.Name,
		Courses:  student.CourseNames(),
		Password: student.Password(),
	}
}

func Records(students []*models.Student, sortByRoll bool) []Record {
	records := make([]Record, 0, len(students))
	for _, student := range students {
		records = append(records, NewRecord(student))
	}
	if sortByRoll {
		slices.SortStableFunc(records, func(a, b Record) bool {
			return a.Roll < b.Roll
		})
	}
	return records
}

func Write(w io.Writer, records []Record, format string) error {
	switch format {
	case FormatYAML:
		return errors.Wrap(yaml.NewEncoder(w).Encode(records), "Failed to encode yaml")
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(records), "Failed to encode json")
	default:
		return errors.Errorf("Unknown dump format %q", format)
	}
}
