package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/contact-book/internal/assistant"
	"github.com/rcliao/contact-book/internal/book"
)

func init() {
	RootCmd.AddCommand(
		&cobra.Command{
			Use:   "add-birthday <name> <DD.MM.YYYY>",
			Short: "Set the birthday of a contact",
			RunE:  runCommand("add-birthday"),
		},
		&cobra.Command{
			Use:   "show-birthday <name>",
			Short: "Show the birthday of a contact",
			RunE:  runCommand("show-birthday"),
		},
	)

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List who to congratulate in the coming days",
		Long: "List contacts whose birthday falls within the window, today included.\n" +
			"Weekend birthdays are congratulated on the following Monday.",
		Args: cobra.NoArgs,
		RunE: runBirthdays,
	}

	cmd.Flags().Int("days", 0, "Window in days (default: birthdays.window_days from config)")
	cmd.Flags().String("date", "", "Reference date as DD.MM.YYYY (default: today)")

	RootCmd.AddCommand(cmd)
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	date, _ := cmd.Flags().GetString("date")

	var cmdArgs []string
	if cmd.Flags().Changed("days") {
		days, _ := cmd.Flags().GetInt("days")
		cmdArgs = append(cmdArgs, strconv.Itoa(days))
	}

	return runAssistant(cmd, "birthdays", cmdArgs, func(a *assistant.Assistant) error {
		if date == "" {
			return nil
		}
		ref, err := book.ParseBirthday(date)
		if err != nil {
			return err
		}
		a.Now = func() time.Time { return ref.Date() }
		return nil
	})
}
