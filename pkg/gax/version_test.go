/*
   GaxRip - GSF ripper for the GAX sound engine
   Copyright (c) 2023, the GaxRip authors

   This file is part of GaxRip.

   GaxRip is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   GaxRip is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with GaxRip. If not, see <http://www.gnu.org/licenses/>.
*/

package gax

import (
	"testing"
)

//
func TestParseVersionText(t *testing.T) {

	tests := []struct {
		text         string
		major, minor int
		ok           bool
	}{
		{"GAX Sound Engine v3.05", 3, 5, true},
		{"GAX Sound Engine V3.05", 3, 5, true},
		{"GAX Sound Engine 3.05A", 3, 5, true},
		{"GAX Sound Engine 2.3", 2, 3, true},
		{"GAX Sound Engine v2.02", 2, 2, true},
		{"GAX Sound Engine v1.99a", 1, 99, true},
		{"GAX Sound Engine ", 0, 0, false},
		{"GAX Sound Engine vX.05", 0, 0, false},
		{"GAX Sound Engine v3", 0, 0, false},
		{"GAX Sound Engine v3.", 0, 0, false},
		{"", 0, 0, false},
		{"something else entirely", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {

			v := ParseVersionText(tc.text)

			if v.Ok() != tc.ok {
				t.Fatalf("ok: got %v, want %v", v.Ok(), tc.ok)
			}
			if tc.ok && (v.Major != tc.major || v.Minor != tc.minor) {
				t.Errorf("got %d.%d, want %d.%d",
					v.Major, v.Minor, tc.major, tc.minor)
			}
		})
	}
}

//
func TestVersionString(t *testing.T) {

	if got := NewVersion(3, 5).String(); got != "3.05" {
		t.Errorf("got %q", got)
	}
	if got := NewVersion(2, 3).String(); got != "2.03" {
		t.Errorf("got %q", got)
	}
	if got := (Version{}).String(); got != "unknown" {
		t.Errorf("got %q", got)
	}
}

// version 0.0 from an actual parse is distinct from the unset zero value
func TestVersionZeroVsUnset(t *testing.T) {

	if (Version{}).Ok() {
		t.Error("zero value reports Ok")
	}
	if !NewVersion(0, 0).Ok() {
		t.Error("explicit 0.0 does not report Ok")
	}
}
