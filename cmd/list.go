package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/enumium/internal/presentation"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all defined enum sets",
	Long: `List every enum set in the definitions file as JSON.

Examples:
  # List everything
  enumium list

  # Use a specific definitions file
  enumium list --file ./enums.yaml

  # Parse specific fields with jq
  enumium list | jq '.[].name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sets, err := loadSets()
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		return formatter.FormatSets(presentation.FromSets(sets))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
