// cvdlint - A colour-vision-deficiency palette auditor
//
// cvdlint simulates colour-vision deficiencies, validates palette
// distinguishability and suggests minimal colour adjustments.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/cvdlint/internal/cli"

func main() {
	cli.Execute()
}
