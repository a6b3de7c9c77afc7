package cmd

import (
	"fmt"
	"strings"

	"pendant/config"
	"pendant/device"
	"pendant/logging"
	"pendant/protocol"
	"pendant/transport"

	// Registered transport backends.
	_ "pendant/hidapi"
	_ "pendant/serialbridge"
	_ "pendant/usbraw"

	"github.com/spf13/cobra"
)

var pendantDevice *device.Device

var (
	transportFlag string
	logLevelFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "pendant",
	Short: "A CLI program which drives a wireless CNC jog pendant over USB HID",
	Long:  "The pendant tool monitors the jog wheel, keys and dials of a wireless CNC pendant and updates its coordinate display.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(openDevice())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if pendantDevice != nil {
			pendantDevice.Stop()
			pendantDevice.Transport().Close()
		}
	},
}

// openDevice loads the configuration, selects a transport backend and
// opens the pendant receiver.
func openDevice() error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	protocol.SetLeadCode(config.LeadCode)

	name := config.TransportName
	if transportFlag != "" {
		name = transportFlag
	}
	factory, ok := transport.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown transport %q (available: %s)",
			name, strings.Join(transport.Names(), ", "))
	}

	tr, err := factory()
	if err != nil {
		return fmt.Errorf("failed to create %s transport: %w", name, err)
	}
	if err := tr.Open(); err != nil {
		return fmt.Errorf("failed to open pendant: %w", err)
	}

	pendantDevice = device.New(tr, device.Options{
		Interval:    config.PollInterval,
		ReadTimeout: config.ReadTimeout,
		Logger:      logging.New(logLevelFlag),
	})
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&transportFlag, "transport", "",
		"transport backend, overrides the config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"log level: debug, info, warn or error")
}
