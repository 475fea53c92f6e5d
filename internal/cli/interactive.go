package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/contact-book/internal/assistant"
)

const (
	welcome = "Welcome to the assistant bot!"
	prompt  = "Enter a command: "
)

// runInteractive reads commands line by line until close, exit or end of
// input, then saves the whole book.
func runInteractive(cmd *cobra.Command, args []string) error {
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
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, welcome)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		reply, exit := a.Handle(scanner.Text())
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
		if exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Reading input failed", zap.Error(err))
	}

	if err := s.Save(cmd.Context(), b); err != nil {
		return fmt.Errorf("save contacts: %w", err)
	}
	return nil
}
