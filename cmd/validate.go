package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PunitTak2005/pan-card-ocr-extraction/extract"
)

var validateCmd = &cobra.Command{
	Use:   "validate [pan-number]",
	Short: "Check a PAN number against the format and holder-type rules",
	Long: `Validate checks that a PAN number is five letters, four digits and a
letter, and reports the holder category encoded in its fourth character.
An unknown holder-type code is flagged but does not fail validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	token := args[0]
	if !extract.ValidPANFormat(token) {
		return fmt.Errorf("%q does not match the PAN format AAAAA9999A", token)
	}

	if category, ok := extract.HolderCategory(token); ok {
		fmt.Printf("%s is valid (holder type: %s)\n", strings.ToUpper(token), category)
	} else {
		fmt.Printf("%s matches the PAN format, but %q is not a known holder-type code\n",
			strings.ToUpper(token), string(strings.ToUpper(token)[3]))
	}
	return nil
}
