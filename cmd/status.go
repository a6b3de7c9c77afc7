package cmd

import (
	"fmt"

	"pendant/config"
	"pendant/hidapi"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the pendant receiver",
	Long:  "Check the status of the USB pendant receiver and print the active configuration.",
	Run: func(cmd *cobra.Command, args []string) {
		if hc, ok := pendantDevice.Transport().(*hidapi.Client); ok {
			info, err := hc.Info()
			cobra.CheckErr(err)
			fmt.Printf("Receiver: %s %s\n", info.MfrStr, info.ProductStr)
			fmt.Printf("Path: %s\n", info.Path)
		}

		fmt.Printf("\nConfiguration script: ~/.pendant\n")
		fmt.Printf("Transport: %s\n", config.TransportName)
		fmt.Printf("Device: VID=0x%04X PID=0x%04X\n", config.VendorID, config.ProductID)
		fmt.Printf("Polling: every %v, read timeout %v\n", config.PollInterval, config.ReadTimeout)
		fmt.Printf("Feed dial lead code: 0x%02X\n", config.LeadCode)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
