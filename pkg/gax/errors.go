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
	"errors"
	"fmt"
	"strings"
)

/*
	The four failure kinds of the core. All of them are detected before the
	first byte of an image is touched, none of them is ever retried: every
	failure here is a property of the input data.

	A signature or pointer that was merely not found is not an error, it is
	threaded through DriverParam as an unset address and only turns into
	IncompleteIdentificationError once the installer requires completeness.
*/
var (
	ErrInvalidAddress = errors.New("address is outside the expected memory domain")
	ErrOutOfRange     = errors.New("write would exceed the image bounds")
)

// IncompleteIdentificationError carries the partial record so the caller
// can render a diagnostic of what was and was not located.
type IncompleteIdentificationError struct {
	Param *DriverParam
}

//
func (e *IncompleteIdentificationError) Error() string {
	var sb strings.Builder
	sb.WriteString("identification of the GAX sound engine is incomplete\n\n")
	e.Param.WriteAsTable(&sb)
	return sb.String()
}

// IncompleteParamsError reports minigsf parameters lacking required fields.
type IncompleteParamsError struct {
	Params MinigsfParams
}

//
func (e *IncompleteParamsError) Error() string {
	return fmt.Sprintf(
		"insufficient minigsf parameters: song=%s, mixing rate=%d",
		e.Params.Song, e.Params.MixingRate)
}
