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

package run

import (
	"fmt"
	"os"

	"github.com/gaxrip/gaxrip/pkg/gax"
	"github.com/gaxrip/gaxrip/pkg/rom"
)

//
func NewInspect() *Inspect {

	i := &Inspect{}
	i.Runner = *NewRunner(
		"inspect -i|--input {file|url} [-s|--songs]",
		"identify the GAX driver in a ROM image",
		`
Use the inspect command to locate the GAX driver in a ROM image and print the
discovered version and entry points, without modifying anything.`,
		"", runnerHelpEpilogue, i.Run)

	i.AddBaseSettings()
	i.AddSetting(&i.Input, "input", "i", "", nil, "ROM image file or URL", true)
	i.AddSetting(&i.Songs, "songs", "s", "", false, "also list songs", false)

	return i
}

//
type Inspect struct {
	Runner
	//
	Input string
	Songs bool
}

//
func (i *Inspect) Run() error {

	i.ParseSettings()

	image, name, err := rom.Load(i.Input)
	if err != nil {
		return err
	}

	param := gax.Inspect(image)

	fmt.Printf("\n%s\n\n", name)
	param.WriteAsTable(os.Stdout)

	if i.Songs && len(param.Songs) > 0 {
		fmt.Println()
		gax.WriteSongsAsTable(os.Stdout, param.Songs)
	}

	fmt.Println()

	if !param.Ok() {
		return fmt.Errorf("identification incomplete")
	}
	return nil
}
