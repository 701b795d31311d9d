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
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/gaxrip/gaxrip/pkg/control"
	"github.com/gaxrip/gaxrip/pkg/repo"
)

//
func NewServe() *Serve {

	s := &Serve{}
	s.Runner = *NewRunner(
		"serve [-a|--address {address}] -r|--repo {dir}",
		"run the control API server",
		`
Use the serve command to run the control API server. It indexes the rips in
the repository directory, keeps the index up to date as rips are added and
removed, and answers version, search, and inspect requests.`,
		"", runnerHelpEpilogue, s.Run)

	s.AddBaseSettings()
	s.AddSetting(&s.Repo, "repo", "r", "GAXRIP_REPO", nil,
		"rip repository directory", true)

	return s
}

//
type Serve struct {
	Runner
	//
	Repo string
}

//
func (s *Serve) Run() error {

	s.ParseSettings()

	index, err := repo.NewIndex(filepath.Join(s.Repo, ".index"), s.Repo)
	if err != nil {
		return fmt.Errorf("cannot open rip index: %v", err)
	}
	defer index.Stop()

	if err := index.Start(); err != nil {
		return err
	}

	server := control.NewAPIServer(s.Address, index)
	defer server.Stop()

	log.WithField("repo", s.Repo).Info("serving")
	return server.Serve()
}
