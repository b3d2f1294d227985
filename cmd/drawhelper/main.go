// Command drawhelper renders a test card through the drawhelper span
// compositor and writes it as PNG or BMP.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
