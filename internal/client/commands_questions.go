package client

import (
	"github.com/spf13/cobra"
)

func (a *App) questionsCmd() *cobra.Command {
	cmd := groupCmd("questions", "List, create, show and delete questions")
	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List all questions",
			Args:    checkArgs(cobra.NoArgs),
			RunE:    a.listQuestions,
		},
		&cobra.Command{
			Use:   "create <text>",
			Short: "Ask a new question",
			Args:  checkArgs(cobra.MinimumNArgs(1)),
			RunE:  a.createQuestion,
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a question with its answers",
			Args:  checkArgs(cobra.ExactArgs(1)),
			RunE:  a.getQuestion,
		},
		&cobra.Command{
			Use:     "delete <id>",
			Aliases: []string{"rm"},
			Short:   "Delete a question and all of its answers",
			Args:    checkArgs(cobra.ExactArgs(1)),
			RunE:    a.deleteQuestion,
		},
	)

	return cmd
}

func (a *App) listQuestions(cmd *cobra.Command, _ []string) error {
	questions, err := a.adapter.ListQuestions(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, questions)
}

func (a *App) createQuestion(cmd *cobra.Command, args []string) error {
	question, err := a.adapter.CreateQuestion(cmd.Context(), joinText(args))
	if err != nil {
		return err
	}
	return printJSON(cmd, question)
}

func (a *App) getQuestion(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	details, err := a.adapter.GetQuestion(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printJSON(cmd, details)
}

func (a *App) deleteQuestion(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteQuestion(cmd.Context(), id); err != nil {
		return err
	}
	a.logger.Info().Int64("question_id", id).Msg("question deleted")

	return nil
}
