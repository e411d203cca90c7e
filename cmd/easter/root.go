package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for easter.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "easter",
		Short: "Compute the date of Easter Sunday",
		Long: `easter computes the date of Easter Sunday for years 326 to 4099.

Three dating methods are supported:
  1  julian          Orthodox Easter as a Julian calendar date
  2  revised-julian  Orthodox Easter converted to the Gregorian calendar
  3  gregorian       Western Easter (default)

Dates are computed with integer arithmetic only, using the tables of the
Astronomical Society of South Australia.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .easter in current or home directory)")

	cmd.AddCommand(NewDateCmd())
	cmd.AddCommand(NewTableCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
