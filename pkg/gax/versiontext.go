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
	"bytes"
)

// Every engine build embeds an identification string starting with this
// prefix, e.g. "GAX Sound Engine v3.05 (C) Shin'en Multimedia".
const versionTextPrefix = "GAX Sound Engine "

// copyright glyph (Latin-1) separating the version from the studio credit
const copyrightGlyph = 0xa9

// versionTextWindow bounds the scan on corrupt data.
const versionTextWindow = 128

/*
	FindVersionText locates the engine identification string in the image,
	starting the search at offset. It returns the cleaned up text, or an
	empty string when no identification is present. Absence is an expected
	outcome for images not built on the engine, not an error.
*/
func FindVersionText(rom []byte, offset int) string {

	if offset < 0 || offset >= len(rom) {
		return ""
	}

	ix := bytes.Index(rom[offset:], []byte(versionTextPrefix))
	if ix < 0 {
		return ""
	}
	start := offset + ix

	end := start + versionTextWindow
	if end > len(rom) {
		end = len(rom)
	}
	text := rom[start:end]

	if z := bytes.IndexByte(text, 0); z >= 0 {
		text = text[:z]
	}

	// trim the studio credit, and the separator byte preceding the glyph
	if c := bytes.IndexByte(text, copyrightGlyph); c >= 0 {
		if c > 0 {
			c--
		}
		text = text[:c]
	}

	return string(text)
}

/*
	ParseVersionText extracts the Version from the identification text. Some
	releases put a 'v' (or 'V') between the prefix and the number, others do
	not; both forms parse to the same result.
*/
func ParseVersionText(text string) Version {

	if len(text) < len(versionTextPrefix)+1 {
		return Version{}
	}

	offset := len(versionTextPrefix)
	if c := text[offset]; c == 'v' || c == 'V' {
		offset++
	}

	return ParseVersion(text, offset)
}
