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

package control

import (
	"fmt"
	"net/http"

	"github.com/gaxrip/gaxrip/pkg/util"
)

//
type Version struct {
	Server string `json:"server"`
}

//
func (v *Version) String() string {
	return fmt.Sprintf("server: %s\n", v.Server)
}

//
func (a *api) version(w http.ResponseWriter, req *http.Request) {

	ver := &Version{Server: util.GaxRipVersion}

	if wantsJSON(req) {
		sendJSONReply(ver, http.StatusOK, w)
	} else {
		sendReply([]byte(ver.String()), http.StatusOK, w)
	}
}
