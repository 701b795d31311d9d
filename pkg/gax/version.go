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
	"fmt"
)

/*
	Version is the engine release parsed from the identification text. The
	zero value is "unset", which is distinct from version 0.0; a Version
	obtained from a successful parse always reports Ok.
*/
type Version struct {
	Major int
	Minor int
	valid bool
}

//
func NewVersion(major, minor int) Version {
	return Version{Major: major, Minor: minor, valid: true}
}

//
func (v Version) Ok() bool {
	return v.valid
}

//
func (v Version) String() string {
	if !v.valid {
		return "unknown"
	}
	return fmt.Sprintf("%d.%02d", v.Major, v.Minor)
}

// ParseVersion reads a major.minor version number from text, starting at
// offset. Anything that does not begin with digits yields an unset Version.
func ParseVersion(text string, offset int) Version {

	if offset < 0 || offset >= len(text) {
		return Version{}
	}

	major, next := parseNumber(text, offset)
	if next == offset {
		return Version{}
	}

	if next >= len(text) || text[next] != '.' {
		return Version{}
	}

	minor, end := parseNumber(text, next+1)
	if end == next+1 {
		return Version{}
	}

	return NewVersion(major, minor)
}

// parseNumber consumes a run of decimal digits and reports where it ended.
func parseNumber(text string, offset int) (int, int) {
	n := 0
	ix := offset
	for ; ix < len(text) && text[ix] >= '0' && text[ix] <= '9'; ix++ {
		n = n*10 + int(text[ix]-'0')
	}
	return n, ix
}
