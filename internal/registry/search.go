package registry

import (
	"strings"

	"github.com/alexsergivan/transliterator"

	"github.com/bigredeye/studreg/internal/models"
)

// NameMatcher compares names by their lower-cased latin transliteration,
// so "Иван" is found by "ivan".
type NameMatcher struct {
	translit *transliterator.Transliterator
}

func NewNameMatcher() *NameMatcher {
	return &NameMatcher{translit: transliterator.NewTransliterator(nil)}
}

func (m *NameMatcher) normalize(s string) string {
	return strings.ToLower(m.translit.Transliterate(strings.TrimSpace(s), "en"))
}

func (m *NameMatcher) Match(name, query string) bool {
	return strings.Contains(m.normalize(name), m.normalize(query))
}

// SearchByName scans the registry and returns students whose name contains
// the query, in file order.
func SearchByName(reg Registry, matcher *NameMatcher, query string) ([]*models.Student, error) {
	found := []*models.Student{}
	err := reg.Each(func(student *models.Student) error {
		if matcher.Match(student.Name, query) {
			found = append(found, student)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
