package registry

import (
	"errors"
	"fmt"
)

var errRollExists = errors.New("roll already exists")

type DuplicateRoll struct {
	Roll string
}

func (e *DuplicateRoll) Error() string {
	return fmt.Sprintf("%s: %s", errRollExists.Error(), e.Roll)
}

func (e *DuplicateRoll) Unwrap() error {
	return errRollExists
}

func IsDuplicateRoll(err error) bool {
	duplicate := &DuplicateRoll{}
	return errors.As(err, &duplicate)
}
