package cmd

import (
	"fmt"
	"strconv"

	"pendant/protocol"

	"github.com/spf13/cobra"
)

var (
	displayMode    string
	displayCoord   string
	displayFeed    uint16
	displaySpindle uint16
)

var displayCmd = &cobra.Command{
	Use:   "display X Y Z",
	Short: "Update the pendant coordinate display",
	Long:  "Write three axis coordinates plus feed and spindle rates to the pendant LCD.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		var axes [3]float64
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				cobra.CheckErr(fmt.Errorf("invalid axis value %q: %w", arg, err))
			}
			axes[i] = v
		}

		mode, err := parseJogMode(displayMode)
		if err != nil {
			cobra.CheckErr(err)
		}
		coord, err := parseCoordinate(displayCoord)
		if err != nil {
			cobra.CheckErr(err)
		}

		frame := protocol.DisplayFrame{
			JogMode:     mode,
			Coordinate:  coord,
			Axis1:       axes[0],
			Axis2:       axes[1],
			Axis3:       axes[2],
			FeedRate:    displayFeed,
			SpindleRate: displaySpindle,
		}
		cobra.CheckErr(pendantDevice.SendDisplay(frame))
	},
}

func parseJogMode(s string) (protocol.JogMode, error) {
	switch s {
	case "continuous":
		return protocol.JogContinuous, nil
	case "step":
		return protocol.JogStep, nil
	case "none":
		return protocol.JogNone, nil
	case "reset":
		return protocol.JogReset, nil
	}
	return 0, fmt.Errorf("invalid jog mode %q (continuous, step, none or reset)", s)
}

func parseCoordinate(s string) (protocol.CoordinateSystem, error) {
	switch s {
	case "primary":
		return protocol.CoordinatePrimary, nil
	case "secondary":
		return protocol.CoordinateSecondary, nil
	}
	return 0, fmt.Errorf("invalid coordinate system %q (primary or secondary)", s)
}

func init() {
	displayCmd.Flags().StringVar(&displayMode, "mode", "none",
		"jog mode indicator: continuous, step, none or reset")
	displayCmd.Flags().StringVar(&displayCoord, "coord", "primary",
		"coordinate system: primary (XYZ) or secondary (X1Y1Z1)")
	displayCmd.Flags().Uint16Var(&displayFeed, "feed", 0, "feed rate")
	displayCmd.Flags().Uint16Var(&displaySpindle, "spindle", 0, "spindle rate")
	rootCmd.AddCommand(displayCmd)
}
