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
	"io"
	"strings"

	"github.com/gaxrip/gaxrip/pkg/util"
)

//
func NewVersion() *Version {
	v := &Version{}
	v.Runner = *NewRunner(
		"version", "get client & server version info", "", "", "", v.Run)
	v.AddBaseSettings()
	return v
}

//
type Version struct {
	Runner
}

//
func (v *Version) Run() error {

	v.ParseSettings()

	resp, err := v.apiCall("GET", "/version", false, nil)
	if err != nil {
		PrintVersion("server:  not reachable\n")
		return nil
	}
	defer resp.Close()

	buf := new(strings.Builder)
	if _, err = io.Copy(buf, resp); err != nil {
		return err
	}

	PrintVersion(buf.String())
	return nil
}

//
func PrintVersion(remote string) {
	fmt.Printf(`
   ____           ____  _
  / ___| __ ___  _|  _ \(_)_ __
 | |  _ / _' \ \/ / |_) | | '_ \
 | |_| | (_| |>  <|  _ <| | |_) |
  \____|\__,_/_/\_\_| \_\_| .__/
                          |_|

gaxrip:  %s
`, util.GaxRipVersion)
	if remote != "" {
		fmt.Printf("%s", remote)
	}
	fmt.Println()
}
