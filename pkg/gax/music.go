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
	"encoding/binary"
	"sort"
	"strings"

	"github.com/gaxrip/gaxrip/pkg/gax/agb"

	log "github.com/sirupsen/logrus"
)

// SongInfo is the display metadata attached to one song. Raw is the
// unmodified info text from the image, Name and Artist are parsed out of it.
type SongInfo struct {
	Raw    string
	Name   string
	Artist string
}

// MusicEntry is one song: the address of its header in the image, plus the
// display metadata. Entries are never modified after the scan.
type MusicEntry struct {
	Address agb.Address
	Info    SongInfo
}

// longest info text considered during the scan
const maxInfoLength = 96

/*
	ScanSongs walks the image for song headers. Songs built with GAX carry
	an info text of the form

		"song name" © 2004 Artist Name

	and the song header holds a pointer to that text. The scan locates the
	texts first, then finds the word aligned ROM word referencing each one;
	that word marks the header. This is a heuristic for diagnostics and
	minigsf naming, the installer never depends on it.
*/
func ScanSongs(rom []byte, version Version) []MusicEntry {

	if !version.Ok() {
		return nil
	}

	var entries []MusicEntry

	for offset := 0; offset < len(rom); {

		ix := bytes.IndexByte(rom[offset:], '"')
		if ix < 0 {
			break
		}
		start := offset + ix
		offset = start + 1

		raw, ok := readInfoText(rom, start)
		if !ok {
			continue
		}

		header := findInfoReference(rom, uint32(start))
		if !header.Set() {
			continue
		}

		entries = append(entries, MusicEntry{
			Address: header,
			Info:    parseSongInfo(raw),
		})

		// resume after the whole text, not inside it
		offset = start + len(raw)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Address.Value() < entries[j].Address.Value()
	})

	log.WithField("songs", len(entries)).Debug("song scan finished")
	return entries
}

/*
	readInfoText reads a candidate info text starting at the opening quote.
	It must be NUL terminated within the length bound and must carry the
	closing quote followed by the copyright glyph to qualify.
*/
func readInfoText(rom []byte, start int) (string, bool) {

	end := start + maxInfoLength
	if end > len(rom) {
		end = len(rom)
	}

	z := bytes.IndexByte(rom[start:end], 0)
	if z < 0 {
		return "", false
	}
	text := rom[start : start+z]

	closing := bytes.IndexByte(text[1:], '"')
	if closing < 0 {
		return "", false
	}
	if bytes.IndexByte(text[closing+1:], copyrightGlyph) < 0 {
		return "", false
	}

	for _, c := range text {
		if c < 0x20 {
			return "", false
		}
	}

	return string(text), true
}

// findInfoReference looks for the word aligned little endian ROM word
// holding the info text's address; that word sits in the song header.
func findInfoReference(rom []byte, infoOffset uint32) agb.Address {

	var needle [4]byte
	binary.LittleEndian.PutUint32(needle[:], agb.ROMAddr(infoOffset).Value())

	for offset := 0; offset+4 <= len(rom); {
		ix := bytes.Index(rom[offset:], needle[:])
		if ix < 0 {
			break
		}
		at := offset + ix
		if at%4 == 0 {
			return agb.ROMAddr(uint32(at))
		}
		offset = at + 1
	}

	return agb.Address{}
}

//
func parseSongInfo(raw string) SongInfo {

	info := SongInfo{Raw: raw}

	if len(raw) > 1 && raw[0] == '"' {
		if closing := strings.IndexByte(raw[1:], '"'); closing >= 0 {
			info.Name = raw[1 : closing+1]
		}
	}

	if c := strings.IndexByte(raw, copyrightGlyph); c >= 0 {
		artist := strings.TrimSpace(raw[c+1:])
		// most builds put the year between the glyph and the artist
		if fields := strings.Fields(artist); len(fields) > 1 && isYear(fields[0]) {
			artist = strings.Join(fields[1:], " ")
		}
		info.Artist = artist
	}

	return info
}

//
func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
