package registry

import "testing"

func TestNameMatcher(t *testing.T) {
	m := NewNameMatcher()
	cases := []struct {
		name  string
		query string
		match bool
	}{
		{"Asha", "asha", true},
		{"Asha Rao", " RAO ", true},
		{"Иван", "ivan", true},
		{"Ravi", "asha", false},
		{"Ravi", "", true},
	}
	for _, c := range cases {
		if got := m.Match(c.name, c.query); got != c.match {
			t.Fatalf("Match(%q, %q) = %v, expected %v", c.name, c.query, got, c.match)
		}
	}
}

func TestSearchByName(t *testing.T) {
	store := newStore(t)
	writeFile(t, store.Path(), "1|Asha||\n2|Ravi||\n3|Asha Rao||\nbad\n")

	found, err := SearchByName(store, NewNameMatcher(), "asha")
	if err != nil {
		t.Fatalf("SearchByName failed: %v", err)
	}
	if len(found) != 2 || found[0].Roll != "1" || found[1].Roll != "3" {
		t.Fatalf("Unexpected result: %v", found)
	}
}
