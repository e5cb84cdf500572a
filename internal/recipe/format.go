// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipe

import (
	"fmt"
	"strings"
)

// FormatText renders a recipe as portable text for clipboard, share and print
// consumers. Section order and the 1-based instruction numbering are part of
// the contract - downstream surfaces display this text as-is.
func FormatText(r *Recipe) string {
	var b strings.Builder

	b.WriteString(r.Name)
	b.WriteString("\n")
	b.WriteString("Total time: ")
	b.WriteString(r.TotalTime)
	b.WriteString("\n\n")

	b.WriteString("Ingredients:\n")
	for _, ingredient := range r.Ingredients {
		b.WriteString("- ")
		b.WriteString(ingredient)
		b.WriteString("\n")
	}

	b.WriteString("\nInstructions:\n")
	for i, instruction := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, instruction)
	}

	if r.Tip != "" {
		b.WriteString("\nTip: ")
		b.WriteString(r.Tip)
		b.WriteString("\n")
	}

	return b.String()
}
