package registry

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIsDuplicateRoll(t *testing.T) {
	err := errors.Wrap(&DuplicateRoll{Roll: "101"}, "Enroll failed")
	if !IsDuplicateRoll(err) {
		t.Fatal("Wrapped duplicate roll not detected")
	}
	if !errors.Is(err, errRollExists) {
		t.Fatal("Duplicate roll must unwrap to errRollExists")
	}
	if IsDuplicateRoll(errors.New("boom")) {
		t.Fatal("Unexpected duplicate roll")
	}
	if err.Error() != "Enroll failed: roll already exists: 101" {
		t.Fatalf("Unexpected message: %q", err.Error())
	}
}
