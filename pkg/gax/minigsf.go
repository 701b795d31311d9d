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

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

// MinigsfParamSize is the fixed size of the encoded parameter record. The
// record is the persisted contract with the playback side of the installed
// driver, field order and widths must not change.
const MinigsfParamSize = 16

const (
	minigsfMusicOffset      = 0
	minigsfFxOffset         = 4
	minigsfFxIDOffset       = 8
	minigsfFlagsOffset      = 10
	minigsfMixingRateOffset = 12
	minigsfVolumeOffset     = 14
)

/*
	MinigsfParams are the playback parameters for a single song. Fx is
	optional; everything else must be present before encoding. The struct
	is transient: constructed, validated, encoded, discarded.
*/
type MinigsfParams struct {
	Song       agb.Address
	Fx         agb.Address
	FxID       uint16
	Flags      uint16
	MixingRate uint16
	Volume     uint16
}

//
func (p MinigsfParams) Ok() bool {
	return p.Song.Set() && p.MixingRate != 0
}

/*
	NewMinigsfData encodes the parameters as the fixed 16 byte little
	endian record: song address, effects table address (0 when absent),
	effect id, flags, mixing rate, volume.
*/
func NewMinigsfData(p MinigsfParams) ([]byte, error) {

	if !p.Ok() {
		return nil, &IncompleteParamsError{Params: p}
	}

	data := make([]byte, MinigsfParamSize)

	binary.LittleEndian.PutUint32(data[minigsfMusicOffset:], p.Song.Value())

	var fx uint32
	if p.Fx.Set() {
		fx = p.Fx.Value()
	}
	binary.LittleEndian.PutUint32(data[minigsfFxOffset:], fx)

	binary.LittleEndian.PutUint16(data[minigsfFxIDOffset:], p.FxID)
	binary.LittleEndian.PutUint16(data[minigsfFlagsOffset:], p.Flags)
	binary.LittleEndian.PutUint16(data[minigsfMixingRateOffset:], p.MixingRate)
	binary.LittleEndian.PutUint16(data[minigsfVolumeOffset:], p.Volume)

	return data, nil
}
