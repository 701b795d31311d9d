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

package repo

import (
	"testing"
)

//
func TestIsRipArtifact(t *testing.T) {

	tests := []struct {
		path string
		want bool
	}{
		{"wings-001.minigsf", true},
		{"wings.gsflib", true},
		{"sub/dir/wings.MINIGSF", true},
		{"wings.gba", false},
		{"wings.gsf", false},
		{"notes.txt", false},
		{"minigsf", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := isRipArtifact(tc.path); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

//
func TestMakeRelative(t *testing.T) {

	i := &Index{repo: "/data/rips"}

	tests := []struct {
		path string
		want string
	}{
		{"/data/rips/wings.gsflib", "wings.gsflib"},
		{"/data/rips/sub/wings-001.minigsf", "sub/wings-001.minigsf"},
		{"/elsewhere/wings.gsflib", "/elsewhere/wings.gsflib"},
		{"wings.gsflib", "wings.gsflib"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := i.makeRelative(tc.path); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

//
func TestNameCleaner(t *testing.T) {

	if got := nameCleaner.Replace("wings_(USA)-001.minigsf"); got !=
		"wings  USA  001 minigsf" {
		t.Errorf("got %q", got)
	}
}
