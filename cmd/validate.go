package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errInvalidViews = errors.New("view configuration is invalid")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Checks the view configuration against the schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("views") == "" {
			return errors.New("no view configuration given, set --views")
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		b, err := newBrowser(context.Background(), newAbstractLogger(logger))
		if err != nil {
			return err
		}

		diagnostics := b.ValidateConfig()
		for _, diagnostic := range diagnostics {
			fmt.Fprintln(cmd.OutOrStdout(), diagnostic)
		}
		if len(diagnostics) != 0 {
			return fmt.Errorf("%w: %d problem(s)", errInvalidViews, len(diagnostics))
		}

		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
