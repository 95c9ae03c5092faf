// SPDX-License-Identifier: MIT

// Command groupstates prints the symmetry-unique occupation states, the
// particle pairs and the site symmetry of a YAML model definition.
//
//	groupstates states model.yaml
//	groupstates pairs model.yaml
//	groupstates sitesym --group 221 0.5 0.5 0
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
