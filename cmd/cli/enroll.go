package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	lf "github.com/bigredeye/studreg/internal/logfield"
	"github.com/bigredeye/studreg/internal/models"
	"github.com/bigredeye/studreg/internal/registry"
)

func makeEnrollCommand() *cobra.Command {
	var name string
	var roll string
	var password string
	var courses string

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			return enroll(cmd.OutOrStdout(), name, roll, password, courses)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Student name")
	cmd.Flags().StringVar(&roll, "roll", "", "Student roll")
	cmd.Flags().StringVar(&password, "password", "", "Student password, stored as is")
	cmd.Flags().StringVar(&courses, "courses", "", "Comma separated course names")
	check(cmd.MarkFlagRequired("roll"))

	return cmd
}

func enroll(out io.Writer, name, roll, password, courses string) error {
	student := models.NewStudent(name, roll, models.ParseCourses(courses), password)
	if err := student.Validate(); err != nil {
		return err
	}

	err := reg.Enroll(student)
	if registry.IsDuplicateRoll(err) {
		return errors.Errorf("Roll %s already exists, enrollment failed", student.Roll)
	}
	if err != nil {
		return err
	}

	log.Info("Enrolled student",
		lf.Roll(student.Roll),
		zap.Int("courses", len(student.Courses)),
	)
	fmt.Fprintln(out, "Student enrolled & saved successfully!")
	return nil
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
