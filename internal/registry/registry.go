package registry

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/studreg/internal/logfield"
	"github.com/bigredeye/studreg/internal/models"
)

// Registry is what the front ends need from a student store.
type Registry interface {
	Enroll(student *models.Student) error
	Each(fn func(student *models.Student) error) error
	List() ([]*models.Student, error)
	FindByRoll(roll string) (*models.Student, error)
}

// Store keeps students in a plain text file, one record per line.
// The file is opened for every operation and never locked, so concurrent
// writers may both pass the roll check and append the same roll.
type Store struct {
	path   string
	logger *zap.Logger
}

var _ Registry = (*Store)(nil)

// errStop ends an Each scan early without reporting an error.
var errStop = errors.New("stop")

func New(path string, logger *zap.Logger) (*Store, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open registry file %s", path)
	}
	if err := file.Close(); err != nil {
		return nil, errors.Wrapf(err, "Failed to close registry file %s", path)
	}

	return &Store{
		path:   path,
		logger: logger.With(lf.Module("registry"), lf.Path(path)),
	}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Enroll(student *models.Student) error {
	existing, err := s.FindByRoll(student.Roll)
	if err != nil {
		return err
	}
	if existing != nil {
		s.logger.Info("Roll already exists, skipping enrollment", lf.Roll(student.Roll))
		return &DuplicateRoll{Roll: student.Roll}
	}

	if err := s.append(student); err != nil {
		return err
	}

	s.logger.Info("Enrolled student", lf.Roll(student.Roll))
	return nil
}

func (s *Store) append(student *models.Student) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "Failed to open registry for append")
	}
	defer file.Close()

	if _, err := file.WriteString(student.Line()); err != nil {
		return errors.Wrap(err, "Failed to append student")
	}
	return errors.Wrap(file.Close(), "Failed to close registry")
}

// Each calls fn for every well formed record in file order.
// Every call starts a fresh scan of the current file contents.
func (s *Store) Each(fn func(student *models.Student) error) error {
	_, err := s.scan(fn)
	return err
}

// scan is Each that also counts skipped lines.
func (s *Store) scan(fn func(student *models.Student) error) (int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return 0, errors.Wrap(err, "Failed to open registry")
	}
	defer file.Close()

	skipped := 0
	lineNo := 0
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			student, ok := models.ParseLine(line)
			if ok {
				if err := fn(student); err != nil {
					return skipped, err
				}
			} else if strings.TrimSpace(line) != "" {
				skipped++
				s.logger.Debug("Skipping malformed line", lf.LineNo(lineNo))
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return skipped, errors.Wrap(readErr, "Failed to read registry")
		}
	}
	return skipped, nil
}

func (s *Store) List() ([]*models.Student, error) {
	students := []*models.Student{}
	err := s.Each(func(student *models.Student) error {
		students = append(students, student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Listed students", lf.Count(len(students)))
	return students, nil
}

// FindByRoll returns the first record with exactly this roll, or nil.
func (s *Store) FindByRoll(roll string) (*models.Student, error) {
	roll = strings.TrimSpace(roll)

	var found *models.Student
	err := s.Each(func(student *models.Student) error {
		if student.Roll == roll {
			found = student
			return errStop
		}
		return nil
	})
	if err != nil && err != errStop {
		return nil, err
	}
	return found, nil
}
