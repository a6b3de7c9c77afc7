package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pendant/protocol"

	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print pendant input events",
	Long:  "Print decoded pendant input events (keys, dials, jog wheel) until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		pendantDevice.Subscribe(printEvent)
		cobra.CheckErr(pendantDevice.Start())

		fmt.Println("Monitoring pendant, press Ctrl-C to stop...")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		pendantDevice.Stop()
	},
}

func printEvent(frame protocol.InputFrame) {
	fmt.Printf("%s %s\n", frame.Timestamp.Format("15:04:05.000"), frame)
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
