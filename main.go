// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/kashsh/kash/cmd/kash"

func main() {
	cmd.Execute()
}
