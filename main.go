// SPDX-License-Identifier: MPL-2.0

// typi installs Typst packages into the local package cache so they can be
// imported as @local/<name>:<version>.
package main

import cmd "typi-cli/cmd/typi"

func main() {
	cmd.Execute()
}
