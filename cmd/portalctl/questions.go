package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"scholarportal/internal/adminclient"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
)

var questionsCmd = &cobra.Command{
	Use:     "questions",
	Aliases: []string{"q"},
	Short:   "Moderate submitted questions",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		client, _, err := newClient()
		if err != nil {
			return err
		}
		questions, err := client.ListQuestions(cmd.Context(), status)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			fmt.Println("No questions.")
			return nil
		}

		tw := newTable()
		fmt.Fprintln(tw, "ID\tSTATUS\tCATEGORY\tEMAIL\tSUBMITTED\tQUESTION")
		for _, q := range questions {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				q.ID, q.Status, q.Category, q.Email, q.SubmittedAt.Format("2006-01-02"), preview(q.QuestionText, 60))
		}
		return tw.Flush()
	},
}

var questionsAnswerCmd = &cobra.Command{
	Use:   "answer <id> <youtube-link>",
	Short: "Answer a pending question with a video link",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		email, err := questionEmail(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		q, err := client.AnswerQuestion(cmd.Context(), args[0], &services.AnswerQuestionRequest{
			YoutubeLink:   args[1],
			QuestionEmail: email,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Question %s answered; the asker is being notified at %s\n", q.ID, q.Email)
		return nil
	},
}

var questionsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		email, err := questionEmail(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		req := &services.RejectQuestionRequest{QuestionEmail: email}
		if cmd.Flags().Changed("reason") {
			reason, _ := cmd.Flags().GetString("reason")
			req.RejectionReason = &reason
		}
		q, err := client.RejectQuestion(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		fmt.Printf("Question %s rejected\n", q.ID)
		return nil
	},
}

// questionEmail looks up the asker's address, which the resolve endpoints
// require as a cross-check.
func questionEmail(ctx context.Context, client *adminclient.Client, id string) (string, error) {
	questions, err := client.ListQuestions(ctx, string(models.QuestionStatusPending))
	if err != nil {
		return "", err
	}
	for _, q := range questions {
		if q.ID == id {
			return q.Email, nil
		}
	}
	return "", fmt.Errorf("no pending question with id %s", id)
}

// preview shortens s to n runes on one line.
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}

func init() {
	questionsListCmd.Flags().String("status", "", "pending, answered or rejected (default all)")
	questionsRejectCmd.Flags().String("reason", "", "optional reason included in the email")
	questionsCmd.AddCommand(questionsListCmd, questionsAnswerCmd, questionsRejectCmd)
}
