package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/zjrosen/enumium/internal/config"
)

var (
	exportFormat string
	exportSave   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <set>",
	Short: "Export one enum set",
	Long: `Export a single enum set through the built-in Export plugin.

Formats: json (default), yaml, text.

Examples:
  enumium export Color
  enumium export Color --format text
  enumium export Color --format yaml --save`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format = exportFormat
		}
		if err := config.ValidateFormat(format); err != nil {
			return err
		}

		reg, _, err := loadSets()
		if err != nil {
			return err
		}
		s, ok := reg.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no enum set named %q in %s", args[0], cfg.DefinitionsFile)
		}

		result, err := s.ExecutePlugin("Export", format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cast.ToString(result))

		if exportSave && cfgFile != "" {
			return config.SaveFormat(cfgFile, format)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json, yaml, or text")
	exportCmd.Flags().BoolVar(&exportSave, "save", false, "persist the chosen format as the config default (needs --config)")
	rootCmd.AddCommand(exportCmd)
}
