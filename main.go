// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/mylo-lang/mylo-dap/cmd/mylodap"

func main() {
	cmd.Execute()
}
