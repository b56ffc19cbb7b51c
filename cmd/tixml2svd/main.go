package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "tixml2svd",
	Short:         "Convert Texas-Instruments device xml data into SVD format",
	Long:          "Convert Texas-Instruments device and peripheral descriptor files (TIXML) into CMSIS-SVD.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
