package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aweris/geoslice"
)

var infoCmd = &cobra.Command{
	Use:   "info <base>",
	Short: "Show a dataset's descriptor",
	Long:  "Print the descriptor and payload stats of the dataset at <base> (expects <base>.json and <base>.bin).",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	base := args[0]

	meta, err := geoslice.LoadMetadata(base + ".json")
	if err != nil {
		return err
	}

	fmt.Printf("dtype:      %s (%d byte/pixel)\n", meta.DType, meta.PixelSize())
	fmt.Printf("bands:      %d\n", meta.Count)
	fmt.Printf("size:       %dx%d\n", meta.Width, meta.Height)
	fmt.Printf("transform:  %v\n", meta.Transform)
	fmt.Printf("crs:        %s\n", meta.CRS)
	fmt.Printf("expected:   %d bytes\n", meta.TotalBytes())

	info, err := os.Stat(base + ".bin")
	if err != nil {
		return fmt.Errorf("stat payload: %w", err)
	}
	fmt.Printf("payload:    %d bytes\n", info.Size())
	if info.Size() < meta.TotalBytes() {
		fmt.Fprintln(os.Stderr, "warning: payload is shorter than the descriptor implies")
	}
	return nil
}
