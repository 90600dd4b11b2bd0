package client

import (
	"github.com/spf13/cobra"
)

func (a *App) answersCmd() *cobra.Command {
	cmd := groupCmd("answers", "Create, show and delete answers")
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <question-id> <text>",
			Short: "Answer a question",
			Args:  checkArgs(cobra.MinimumNArgs(2)),
			RunE:  a.createAnswer,
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show an answer",
			Args:  checkArgs(cobra.ExactArgs(1)),
			RunE:  a.getAnswer,
		},
		&cobra.Command{
			Use:     "delete <id>",
			Aliases: []string{"rm"},
			Short:   "Delete an answer",
			Args:    checkArgs(cobra.ExactArgs(1)),
			RunE:    a.deleteAnswer,
		},
	)

	return cmd
}

func (a *App) createAnswer(cmd *cobra.Command, args []string) error {
	questionID, err := parseID(args[0])
	if err != nil {
		return err
	}

	answer, err := a.adapter.CreateAnswer(cmd.Context(), questionID, joinText(args[1:]))
	if err != nil {
		return err
	}
	return printJSON(cmd, answer)
}

func (a *App) getAnswer(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	answer, err := a.adapter.GetAnswer(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printJSON(cmd, answer)
}

func (a *App) deleteAnswer(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteAnswer(cmd.Context(), id); err != nil {
		return err
	}
	a.logger.Info().Int64("answer_id", id).Msg("answer deleted")

	return nil
}
