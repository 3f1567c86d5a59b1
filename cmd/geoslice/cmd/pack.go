package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aweris/geoslice/internal/archive"
)

var packCmd = &cobra.Command{
	Use:   "pack <base> <out>",
	Short: "Package a dataset into a compressed archive",
	Long:  "Bundle <base>.json and <base>.bin into a single zstd-compressed tarball for transport.",
	Args:  cobra.ExactArgs(2),
	RunE:  runPack,
}

var unpackCmd = &cobra.Command{
	Use:   "unpack <archive> <dir>",
	Short: "Extract a packed dataset",
	Long:  "Extract a dataset archive into <dir>. Prints the base path of the extracted dataset.",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnpack,
}

func init() {
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	base, out := args[0], args[1]
	if err := archive.Pack(base, out); err != nil {
		return fmt.Errorf("pack %s: %w", base, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
	return nil
}

func runUnpack(cmd *cobra.Command, args []string) error {
	in, dir := args[0], args[1]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	base, err := archive.Unpack(in, dir)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", in, err)
	}
	fmt.Println(base)
	return nil
}
