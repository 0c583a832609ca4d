// Command prism lists, inspects and exports the PRISM speaker recognition
// protocols.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
