// SPDX-License-Identifier: MIT

// Command mandelcalc computes Mandelbrot escape-time matrices with the
// strategies of package mandel, writes image or raw artifacts, checks results
// against stored references and compares strategies against each other.
//
//	mandelcalc run --size 2048 --limit 500 --strategy batch --output set.png
//	mandelcalc run --size 512 --output ref.mtx.zst
//	mandelcalc run --size 512 --strategy line --reference ref.mtx.zst
//	mandelcalc compare --size 1024 --workers 4
//	mandelcalc config init mandelcalc.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
