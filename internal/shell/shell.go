package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/studreg/internal/logfield"
	"github.com/bigredeye/studreg/internal/models"
	"github.com/bigredeye/studreg/internal/registry"
)

const (
	choiceEnroll = "1"
	choiceList   = "2"
	choiceFind   = "3"
	choiceExit   = "4"
)

// Shell is the interactive menu over a registry.
type Shell struct {
	registry registry.Registry
	in       *bufio.Reader
	out      io.Writer
	logger   *zap.Logger

	// Shown on exit.
	dataPath string
}

func New(reg registry.Registry, dataPath string, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	return &Shell{
		registry: reg,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger.With(lf.Module("shell")),
		dataPath: dataPath,
	}
}

// Run loops until exit or end of input. Registry I/O faults end the loop.
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, err := s.prompt("Choose an option (1-4): ")
		if err == io.EOF {
			s.printExit()
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case choiceEnroll:
			err = s.enroll()
		case choiceList:
			_, err = RenderAll(s.out, s.registry.Each)
		case choiceFind:
			err = s.find()
		case choiceExit:
			s.printExit()
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select 1-4.")
		}

		if err == io.EOF {
			s.printExit()
			return nil
		}
		if err != nil {
			s.logger.Error("Registry operation failed", zap.Error(err))
			return err
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\n# Welcome to School Management System #")
	fmt.Fprintln(s.out, "1. Enroll New Student")
	fmt.Fprintln(s.out, "2. Show All Students")
	fmt.Fprintln(s.out, "3. Search Student by Roll")
	fmt.Fprintln(s.out, "4. Exit")
}

func (s *Shell) printExit() {
	fmt.Fprintf(s.out, "Exiting... Data is saved in %s\n", s.dataPath)
}

// prompt returns the trimmed answer. A final line without newline is
// still returned, io.EOF comes only when nothing was read.
func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "Failed to read input")
	}
	return strings.TrimSpace(line), err
}

func (s *Shell) prompts(texts ...string) ([]string, error) {
	answers := make([]string, 0, len(texts))
	for _, text := range texts {
		answer, err := s.prompt(text)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (s *Shell) enroll() error {
	answers, err := s.prompts(
		"Enter student name: ",
		"Enter student roll: ",
		"Set a password (hidden info): ",
		"Enter courses (comma separated, e.g., Math,English): ",
	)
	if err != nil {
		return err
	}
	name, roll, password, courses := answers[0], answers[1], answers[2], answers[3]

	student := models.NewStudent(name, roll, models.ParseCourses(courses), password)
	if err := student.Validate(); err != nil {
		fmt.Fprintf(s.out, "Enrollment failed: %s\n", err.Error())
		return nil
	}

	err = s.registry.Enroll(student)
	if registry.IsDuplicateRoll(err) {
		fmt.Fprintln(s.out, "Roll already exists! Enrollment failed.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Student enrolled & saved successfully!")
	return nil
}

func (s *Shell) find() error {
	roll, err := s.prompt("Enter roll to search: ")
	if err != nil {
		return err
	}
	student, err := s.registry.FindByRoll(roll)
	if err != nil {
		return err
	}
	RenderFound(s.out, student)
	return nil
}
