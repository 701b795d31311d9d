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
	"encoding/binary"
	"testing"
)

//
func TestScanSongs(t *testing.T) {

	rom := make([]byte, 0x200)

	// info text, and the word aligned header word referencing it
	copy(rom[0x20:], "\"test song\" \xa9 2004 Manfred Linzner\x00")
	binary.LittleEndian.PutUint32(rom[0x80:], 0x08000020)

	songs := ScanSongs(rom, NewVersion(3, 5))
	if len(songs) != 1 {
		t.Fatalf("got %d songs, want 1", len(songs))
	}

	s := songs[0]
	if s.Address.Value() != 0x08000080 {
		t.Errorf("header address: got %s", s.Address)
	}
	if s.Info.Name != "test song" {
		t.Errorf("name: got %q", s.Info.Name)
	}
	if s.Info.Artist != "Manfred Linzner" {
		t.Errorf("artist: got %q", s.Info.Artist)
	}
}

//
func TestScanSongsSorted(t *testing.T) {

	rom := make([]byte, 0x400)

	copy(rom[0x20:], "\"beta\" \xa9 2004 B\x00")
	copy(rom[0x60:], "\"alpha\" \xa9 2004 A\x00")

	// headers in reverse order of the texts
	binary.LittleEndian.PutUint32(rom[0x200:], 0x08000060) // alpha
	binary.LittleEndian.PutUint32(rom[0x300:], 0x08000020) // beta

	songs := ScanSongs(rom, NewVersion(3, 5))
	if len(songs) != 2 {
		t.Fatalf("got %d songs, want 2", len(songs))
	}
	if songs[0].Info.Name != "alpha" || songs[1].Info.Name != "beta" {
		t.Errorf("not sorted by header address: %q, %q",
			songs[0].Info.Name, songs[1].Info.Name)
	}
}

// the scan requires an identified engine
func TestScanSongsUnknownVersion(t *testing.T) {

	rom := make([]byte, 0x200)
	copy(rom[0x20:], "\"test song\" \xa9 2004 Manfred Linzner\x00")
	binary.LittleEndian.PutUint32(rom[0x80:], 0x08000020)

	if songs := ScanSongs(rom, Version{}); songs != nil {
		t.Errorf("got %d songs without a version", len(songs))
	}
}

// unreferenced texts and quote lookalikes must not produce songs
func TestScanSongsRejectsCandidates(t *testing.T) {

	rom := make([]byte, 0x200)

	copy(rom[0x20:], "\"orphan\" \xa9 2004 Nobody\x00") // no header word
	copy(rom[0x60:], "\"no glyph here\"\x00")
	copy(rom[0x90:], "\"unterminated")

	if songs := ScanSongs(rom, NewVersion(3, 5)); len(songs) != 0 {
		t.Errorf("got %d songs, want 0", len(songs))
	}
}

//
func TestParseSongInfo(t *testing.T) {

	tests := []struct {
		raw    string
		name   string
		artist string
	}{
		{"\"abc\" \xa9 2004 Foo Bar", "abc", "Foo Bar"},
		{"\"abc\" \xa9 Foo Bar", "abc", "Foo Bar"},
		{"\"abc\" \xa9 2004", "abc", "2004"},
		{"\"abc\"", "abc", ""},
		{"no quotes at all", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {

			info := parseSongInfo(tc.raw)

			if info.Raw != tc.raw {
				t.Errorf("raw: got %q", info.Raw)
			}
			if info.Name != tc.name {
				t.Errorf("name: got %q, want %q", info.Name, tc.name)
			}
			if info.Artist != tc.artist {
				t.Errorf("artist: got %q, want %q", info.Artist, tc.artist)
			}
		})
	}
}
