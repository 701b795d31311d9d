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

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

//
func TestScanFindsSignature(t *testing.T) {

	rom := make([]byte, 0x1000)
	copy(rom[0x100:], gax2EstimateSigs[0])

	got := scan(rom, gax2EstimateSigs, 0)
	if !got.Set() {
		t.Fatal("signature not found")
	}
	if got.Value() != 0x08000100 {
		t.Errorf("got %s, want 0x08000100", got)
	}
}

// matching is exact, a single flipped byte must not match
func TestScanRejectsMutation(t *testing.T) {

	rom := make([]byte, 0x1000)
	copy(rom[0x100:], gax2EstimateSigs[0])
	rom[0x100+5] ^= 0x01

	if got := scan(rom, gax2EstimateSigs, 0); got.Set() {
		t.Errorf("mutated signature matched at %s", got)
	}
}

// catalog order decides, not image order: an earlier catalog entry found
// later in the image beats a later entry found earlier
func TestScanCatalogPrecedence(t *testing.T) {

	rom := make([]byte, 0x1000)
	copy(rom[0x80:], gax2NewSigs[1])
	copy(rom[0x200:], gax2NewSigs[0])

	got := scan(rom, gax2NewSigs, 0)
	if got.Value() != 0x08000200 {
		t.Errorf("got %s, want 0x08000200", got)
	}
}

//
func TestScanHonorsOffset(t *testing.T) {

	rom := make([]byte, 0x1000)
	copy(rom[0x100:], gaxPlaySigs[0])

	if got := scan(rom, gaxPlaySigs, 0x200); got.Set() {
		t.Errorf("found %s when scanning past the signature", got)
	}

	if got := scan(rom, gaxPlaySigs, 0x100); got.Value() != 0x08000100 {
		t.Errorf("got %s, want 0x08000100", got)
	}
}

//
func TestScanBadOffsets(t *testing.T) {

	rom := make([]byte, 0x100)

	for _, offset := range []int{-1, len(rom), len(rom) + 1} {
		if got := scan(rom, gaxIrqSigs, offset); got != (agb.Address{}) {
			t.Errorf("offset %d: got %s", offset, got)
		}
	}
}

// every catalog entry must stay unique within its catalog
func TestSignatureCatalogsDistinct(t *testing.T) {

	catalogs := map[string][][]byte{
		"gax2_estimate": gax2EstimateSigs,
		"gax2_new":      gax2NewSigs,
		"gax2_init":     gax2InitSigs,
		"gax_irq":       gaxIrqSigs,
		"gax_play":      gaxPlaySigs,
	}

	for name, sigs := range catalogs {
		seen := map[string]bool{}
		for ix, sig := range sigs {
			if len(sig) == 0 {
				t.Errorf("%s[%d]: empty signature", name, ix)
			}
			if seen[string(sig)] {
				t.Errorf("%s[%d]: duplicate signature", name, ix)
			}
			seen[string(sig)] = true
		}
	}
}
