package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studyplanhq/studyplan/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add courses, topics and assessments",
}

var addCourseCmd = &cobra.Command{
	Use:   "course <name>",
	Short: "Add a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		code, _ := cmd.Flags().GetString("code")
		c := store.Course{ID: uuid.NewString(), Name: args[0], Code: code}
		if err := st.Courses().Create(cmd.Context(), c); err != nil {
			return err
		}
		fmt.Println(c.ID)
		return nil
	},
}

var addTopicCmd = &cobra.Command{
	Use:   "topic <name>",
	Short: "Add a topic to a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID := mustFlag(cmd, "course")

		_, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		course, err := st.Courses().Get(cmd.Context(), courseID)
		if err != nil {
			return err
		}
		if course == nil {
			return fmt.Errorf("unknown course %s", courseID)
		}

		position, _ := cmd.Flags().GetInt("position")
		t := store.Topic{ID: uuid.NewString(), CourseID: courseID, Name: args[0], Position: position}
		if err := st.Topics().Create(cmd.Context(), t); err != nil {
			return err
		}
		fmt.Println(t.ID)
		return nil
	},
}

var addAssessmentCmd = &cobra.Command{
	Use:   "assessment <title>",
	Short: "Add a dated, weighted assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		due, err := parseWhen(mustFlag(cmd, "due"))
		if err != nil {
			return fmt.Errorf("parse --due: %w", err)
		}
		weight, _ := cmd.Flags().GetFloat64("weight")
		kind, _ := cmd.Flags().GetString("kind")
		topics, _ := cmd.Flags().GetString("topics")

		_, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		a := store.Assessment{
			ID:       uuid.NewString(),
			CourseID: mustFlag(cmd, "course"),
			Title:    args[0],
			Kind:     kind,
			Weight:   weight,
			DueDate:  due,
			TopicIDs: strings.Split(topics, ","),
		}
		if err := st.Assessments().Create(cmd.Context(), a); err != nil {
			return err
		}
		fmt.Println(a.ID)
		return nil
	},
}

func init() {
	addCourseCmd.Flags().String("code", "", "Short course code, e.g. MATH201")

	addTopicCmd.Flags().String("course", "", "Course ID the topic belongs to")
	addTopicCmd.Flags().Int("position", 0, "Display order within the course")
	addTopicCmd.MarkFlagRequired("course")

	addAssessmentCmd.Flags().String("course", "", "Course ID")
	addAssessmentCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	addAssessmentCmd.Flags().Float64("weight", 10, "Grade weight percent, 0-100")
	addAssessmentCmd.Flags().String("kind", "exam", "exam, quiz, project or homework")
	addAssessmentCmd.Flags().String("topics", "", "Comma-separated topic IDs the assessment covers")
	addAssessmentCmd.MarkFlagRequired("course")
	addAssessmentCmd.MarkFlagRequired("due")
	addAssessmentCmd.MarkFlagRequired("topics")

	addCmd.AddCommand(addCourseCmd)
	addCmd.AddCommand(addTopicCmd)
	addCmd.AddCommand(addAssessmentCmd)
}
