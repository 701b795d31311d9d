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

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/gaxrip/gaxrip/pkg/run"
)

//
type command interface {
	Execute(args []string) error
}

//
func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05"})

	commands := map[string]func() command{
		"rip":     func() command { return run.NewRip() },
		"inspect": func() command { return run.NewInspect() },
		"search":  func() command { return run.NewSearch() },
		"serve":   func() command { return run.NewServe() },
		"version": func() command { return run.NewVersion() },
	}

	if len(os.Args) < 2 {
		usage(commands)
		os.Exit(1)
	}

	name := os.Args[1]
	create, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", name)
		usage(commands)
		os.Exit(1)
	}

	if err := create().Execute(os.Args[2:]); err != nil {
		log.Errorf("%s failed: %v", name, err)
		os.Exit(1)
	}
}

//
func usage(commands map[string]func() command) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintf(os.Stderr,
		"\nusage: gaxrip {%s} [options]\n\nRun 'gaxrip {command} --help' for details.\n",
		strings.Join(names, "|"))
}
