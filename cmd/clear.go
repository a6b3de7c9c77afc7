package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Blank the pendant display",
	Long:  "Blank the pendant coordinate display.",
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(pendantDevice.ClearDisplay())
		fmt.Println("Display cleared")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
