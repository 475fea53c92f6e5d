package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/contact-book/internal/assistant"
)

func init() {
	RootCmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <phone>",
			Short: "Add a contact, or another phone to an existing one",
			RunE:  runCommand("add"),
		},
		&cobra.Command{
			Use:   "change <name> <phone>",
			Short: "Replace all phones of a contact with one phone",
			RunE:  runCommand("change"),
		},
		&cobra.Command{
			Use:   "phone <name>",
			Short: "Show the first phone of a contact",
			RunE:  runCommand("phone"),
		},
		&cobra.Command{
			Use:   "all",
			Short: "List all contacts",
			RunE:  runCommand("all"),
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a contact",
			RunE:  runCommand("delete"),
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Find contacts by name or phone",
			RunE:  runCommand("search"),
		},
	)
}

// runCommand runs a single assistant command against the saved book and
// saves it again when the command changed it.
func runCommand(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runAssistant(cmd, name, args, nil)
	}
}

func runAssistant(cmd *cobra.Command, name string, args []string, configure func(*assistant.Assistant) error) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	b, err := s.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	a := assistant.New(b, cfg.Birthdays.WindowDays, logger)
	if configure != nil {
		if err := configure(a); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Run(name, args))

	if !a.Dirty() {
		return nil
	}
	if err := s.Save(cmd.Context(), b); err != nil {
		return fmt.Errorf("save contacts: %w", err)
	}
	return nil
}
