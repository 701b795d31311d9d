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
	"errors"
	"testing"

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

//
func TestNewMinigsfData(t *testing.T) {

	data, err := NewMinigsfData(MinigsfParams{
		Song:       agb.Ptr(0x08001000),
		Fx:         agb.Ptr(0x08002000),
		FxID:       7,
		Flags:      3,
		MixingRate: 15769,
		Volume:     256,
	})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if len(data) != MinigsfParamSize {
		t.Fatalf("got %d bytes, want %d", len(data), MinigsfParamSize)
	}

	if got := binary.LittleEndian.Uint32(data[0:]); got != 0x08001000 {
		t.Errorf("song: got 0x%08x", got)
	}
	if got := binary.LittleEndian.Uint32(data[4:]); got != 0x08002000 {
		t.Errorf("fx: got 0x%08x", got)
	}
	if got := binary.LittleEndian.Uint16(data[8:]); got != 7 {
		t.Errorf("fx id: got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[10:]); got != 3 {
		t.Errorf("flags: got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[12:]); got != 15769 {
		t.Errorf("mixing rate: got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[14:]); got != 256 {
		t.Errorf("volume: got %d", got)
	}
}

// absent effects table encodes as address 0
func TestNewMinigsfDataNoFx(t *testing.T) {

	data, err := NewMinigsfData(MinigsfParams{
		Song:       agb.Ptr(0x08001000),
		MixingRate: 15769,
		Volume:     256,
	})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if got := binary.LittleEndian.Uint32(data[4:]); got != 0 {
		t.Errorf("fx: got 0x%08x, want 0", got)
	}
}

//
func TestNewMinigsfDataIncomplete(t *testing.T) {

	tests := []struct {
		name   string
		params MinigsfParams
	}{
		{"no song", MinigsfParams{MixingRate: 15769}},
		{"no mixing rate", MinigsfParams{Song: agb.Ptr(0x08001000)}},
		{"empty", MinigsfParams{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			data, err := NewMinigsfData(tc.params)
			if err == nil {
				t.Fatal("expected error")
			}

			var incomplete *IncompleteParamsError
			if !errors.As(err, &incomplete) {
				t.Errorf("unexpected error type: %v", err)
			}
			if data != nil {
				t.Error("got data despite error")
			}
		})
	}
}
