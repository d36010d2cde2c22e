// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// FormatStreamError formats a result-stream failure in a user-friendly way.
// partial reports whether any advice text had already arrived.
func FormatStreamError(errMsg string, partial bool) string {
	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Advice generation stopped"))
	builder.WriteString("\n\n")
	builder.WriteString("The connection to the advice stream ended before it finished.\n")
	builder.WriteString("This usually happens when:\n")
	builder.WriteString("  • The backend API is not running or was restarted\n")
	builder.WriteString("  • The AI provider behind the backend returned an error\n")
	builder.WriteString("  • A proxy closed the long-lived connection\n")
	if partial {
		builder.WriteString("\nText received so far is shown above and may be incomplete.\n")
	}
	builder.WriteString("\n")
	builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please run 'restaurantai simulate' again"))
	builder.WriteString("\n")

	if strings.TrimSpace(errMsg) != "" {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(errMsg)))
	}

	return builder.String()
}

// PresentStreamError displays a formatted stream error
func PresentStreamError(errMsg string, partial bool) {
	fmt.Println()
	fmt.Println(FormatStreamError(errMsg, partial))
	fmt.Println()
}
