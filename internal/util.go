/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"strings"
)

// FormatSigned renders an integer diff with an explicit sign, e.g. "+3",
// "-2", "+0".
func FormatSigned(n int) string {
	return fmt.Sprintf("%+d", n)
}

// PercentBar renders pct (0-100) as a fixed-width ASCII bar, e.g.
// "[#####.....]" for 50 at width 10. Out-of-range values are clamped.
func PercentBar(pct int, width int) string {
	if width <= 0 {
		return "[]"
	}
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(strings.Repeat("#", filled))
	sb.WriteString(strings.Repeat(".", width-filled))
	sb.WriteByte(']')

	return sb.String()
}

// FormatOMW renders an OMW fraction as a percentage with one decimal,
// e.g. 0.5867 -> "58.7%".
func FormatOMW(omw float64) string {
	return fmt.Sprintf("%.1f%%", omw*100.0)
}
