package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import contacts from JSON or YAML",
		Long: "Import contacts from stdin in the format produced by export.\n" +
			"Contacts with an existing name replace the saved record.",
		Args: cobra.NoArgs,
		RunE: runImport,
	}

	cmd.Flags().StringP("format", "f", "json", "Input format: json or yaml")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	contacts, err := decodeContacts(data, format)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), contacts)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
	return nil
}
