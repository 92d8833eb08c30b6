package cmd

import (
	"github.com/spf13/cobra"
)

// licenseCmd represents the license command group.
var licenseCmd *cobra.Command

func newLicenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Manage the license that unlocks deck export",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newLicenseActivateCmd(), newLicenseStatusCmd())

	return cmd
}

func newLicenseActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <key>",
		Short: "Activate a license key on this machine",
		Long: `Activate a license key of the form INSPECTO-PRO-XXXX-XXXX.

A key is bound to the machine it is first activated on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Activate(cmd.Context(), args[0])
		},
	}
}

func newLicenseStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the license status and machine ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Status(cmd.Context())
		},
	}
}

func init() {
	licenseCmd = newLicenseCmd()
	rootCmd.AddCommand(licenseCmd)
}
