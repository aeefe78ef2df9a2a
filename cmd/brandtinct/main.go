// brandtinct - A brand colour system generator
//
// brandtinct turns a five-axis brand personality, optional seed colours and
// an industry into an accessibility-checked colour system and exports it as
// JSON, CSS custom properties, a Tailwind config or a PNG swatch sheet.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/brandtinct/internal/cli"

func main() {
	cli.Execute()
}
