package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/contact-book/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export contacts as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	cmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	contacts, err := s.ExportAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	b, err := encodeContacts(contacts, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

func encodeContacts(contacts []model.Contact, format string) ([]byte, error) {
	if contacts == nil {
		contacts = []model.Contact{}
	}
	switch format {
	case "json":
		b, err := json.MarshalIndent(contacts, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return yaml.Marshal(contacts)
	}
	return nil, fmt.Errorf("unknown format %q (use json or yaml)", format)
}

func decodeContacts(data []byte, format string) ([]model.Contact, error) {
	var contacts []model.Contact
	switch format {
	case "json":
		if err := json.Unmarshal(data, &contacts); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &contacts); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q (use json or yaml)", format)
	}
	return contacts, nil
}
