// Command bimap loads a YAML mapping into a bimap and queries it in either direction.
//
//	bimap lookup --file pairs.yaml KEY...
//	bimap reverse --file pairs.yaml VALUE...
//	bimap invert --file pairs.yaml [--force]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bimap failed: %v\n", err)
		os.Exit(1)
	}
}
