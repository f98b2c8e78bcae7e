package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tradeplan CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tradeplan version %s\n", version)
		fmt.Println("Risk-first trade planning for manual order entry")
		fmt.Println("https://github.com/rustyeddy/tradeplan")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
