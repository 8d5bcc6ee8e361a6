/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import "testing"

func TestFormatSigned(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{3, "+3"},
		{-2, "-2"},
		{0, "+0"},
	}
	for _, c := range cases {
		if got := FormatSigned(c.in); got != c.want {
			t.Errorf("FormatSigned(%d) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestPercentBar(t *testing.T) {
	cases := []struct {
		pct, width int
		want       string
	}{
		{0, 10, "[..........]"},
		{50, 10, "[#####.....]"},
		{100, 10, "[##########]"},
		{75, 4, "[###.]"},
		{-5, 4, "[....]"},
		{150, 4, "[####]"},
		{50, 0, "[]"},
	}
	for _, c := range cases {
		if got := PercentBar(c.pct, c.width); got != c.want {
			t.Errorf("PercentBar(%d, %d) = %q; want %q", c.pct, c.width, got,
				c.want)
		}
	}
}

func TestFormatOMW(t *testing.T) {
	if got := FormatOMW(0.5867); got != "58.7%" {
		t.Errorf("FormatOMW(0.5867) = %q; want \"58.7%%\"", got)
	}
	if got := FormatOMW(1.0); got != "100.0%" {
		t.Errorf("FormatOMW(1.0) = %q; want \"100.0%%\"", got)
	}
}
