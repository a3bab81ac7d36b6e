package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var validateLoose bool

var validateCmd = &cobra.Command{
	Use:   "validate <set> <payload>",
	Short: "Check whether a payload belongs to an enum set",
	Long: `Check a payload against an enum set's members using the built-in
Validation plugin. Exits non-zero when the payload is not a member.

The payload argument is parsed as an integer, float, or bool when
possible, and falls back to a plain string. Use --loose to compare by
stringified form instead of structural equality.

Examples:
  enumium validate Color 2
  enumium validate Status 404 --loose`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := loadSets()
		if err != nil {
			return err
		}
		s, ok := reg.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no enum set named %q in %s", args[0], cfg.DefinitionsFile)
		}

		mode := "strict"
		if validateLoose {
			mode = "loose"
		}
		result, err := s.ExecutePlugin("Validation", parsePayload(args[1]), mode)
		if err != nil {
			return err
		}

		if result != true {
			return fmt.Errorf("%q is not a member of %s", args[1], args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%q is a member of %s\n", args[1], args[0])
		return nil
	},
}

// parsePayload mirrors how the YAML loader types scalar values, so a
// command-line payload compares against definitions the way the file
// declared them.
func parsePayload(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func init() {
	validateCmd.Flags().BoolVar(&validateLoose, "loose", false, "compare by stringified form")
	rootCmd.AddCommand(validateCmd)
}
