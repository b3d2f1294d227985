package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/drawhelper"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List pixel formats, composition modes and the selected backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "formats:")
		for f := drawhelper.Format(1); f.IsValid(); f++ {
			target := "target"
			if _, err := drawhelper.NewSpanData(mustSurface(f), drawhelper.Solid(0)); err != nil {
				target = "source only"
			}
			fmt.Fprintf(out, "  %-22s %2d bpp  %s\n", f, f.BPP().Bits(), target)
		}
		fmt.Fprintln(out, "modes:")
		for m := drawhelper.Mode(0); m.IsValid(); m++ {
			fmt.Fprintf(out, "  %s\n", m)
		}
		fmt.Fprintf(out, "backend: %s\n", drawhelper.DefaultTables().Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func mustSurface(f drawhelper.Format) *drawhelper.Surface {
	s, err := drawhelper.NewSurface(1, 1, f)
	if err != nil {
		panic(err)
	}
	return s
}
