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
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaxrip/gaxrip/pkg/util"
)

//
const runnerHelpEpilogue = `- All settings can also be provided via environment variables of the form
  GAXRIP_{SETTING}, e.g. GAXRIP_ADDRESS. Command line flags take precedence.
`

//
const defaultAddress = "localhost:8888"

/*
	NewRunner creates a runner for a command. use, short, long, and examples
	go into the help screen as is, run is invoked after flag parsing. Every
	command defines its settings with AddSetting, and reads them back after
	calling ParseSettings in its run function.
*/
func NewRunner(use, short, long, examples, epilogue string,
	run func() error) *Runner {

	r := &Runner{run: run}

	r.cmd = &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long + "\n\nSettings:",
		Example:       examples,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run()
		},
	}

	if epilogue != "" {
		r.cmd.SetHelpTemplate(fmt.Sprintf(`%s
Notes:
%s`, r.cmd.HelpTemplate(), epilogue))
	}

	return r
}

//
type Runner struct {
	cmd      *cobra.Command
	run      func() error
	settings []*setting
	//
	Address  string
	LogLevel string
}

//
type setting struct {
	name     string
	env      string
	def      *util.Annotation
	required bool
}

// AddBaseSettings adds the settings every command has.
func (r *Runner) AddBaseSettings() {
	r.AddSetting(&r.Address, "address", "a", "GAXRIP_ADDRESS", defaultAddress,
		"control API address, {host}:{port}", false)
	r.AddSetting(&r.LogLevel, "log-level", "l", "GAXRIP_LOG_LEVEL", "info",
		"log level: trace, debug, info, warn, error, fatal, panic", false)
}

/*
	AddSetting defines a command setting backed by target, which must be a
	pointer to string, int, uint32, or bool. def is the default value; nil
	stands for the zero value of the target's type. When env is set, the
	setting can also be given via that environment variable.
*/
func (r *Runner) AddSetting(target interface{}, name, short, env string,
	def interface{}, help string, required bool) {

	d := util.NewAnnotation(name, def)
	flags := r.cmd.Flags()

	switch t := target.(type) {

	case *string:
		flags.StringVarP(t, name, short, d.String(), help)

	case *int:
		flags.IntVarP(t, name, short, d.Int(), help)

	case *uint32:
		flags.Uint32VarP(t, name, short, d.Uint32(), help)

	case *bool:
		flags.BoolVarP(t, name, short, d.Bool(), help)

	default:
		panic(fmt.Sprintf("unsupported setting type for '%s'", name))
	}

	if required {
		r.cmd.MarkFlagRequired(name)
	}

	if env != "" {
		viper.BindEnv(name, env)
	}
	viper.BindPFlag(name, flags.Lookup(name))

	r.settings = append(r.settings, &setting{
		name: name, env: env, def: d, required: required})
}

/*
	ParseSettings applies environment variable values for settings that were
	not given on the command line, and sets up logging. Call this first in
	the run function.
*/
func (r *Runner) ParseSettings() {

	r.cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			r.cmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})

	if r.LogLevel != "" {
		if level, err := log.ParseLevel(r.LogLevel); err == nil {
			log.SetLevel(level)
		} else {
			log.Warnf("invalid log level '%s', keeping '%s'",
				r.LogLevel, log.GetLevel())
		}
	}
}

// IsSet reports whether the setting was explicitly given, on the command
// line or via its environment variable.
func (r *Runner) IsSet(name string) bool {
	if f := r.cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	for _, s := range r.settings {
		if s.name == name && s.env != "" {
			if _, present := os.LookupEnv(s.env); present {
				return true
			}
		}
	}
	return false
}

//
func (r *Runner) Execute(args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.Execute()
}

// apiCall sends a request to the control API server. The returned reader
// carries the response body and needs to be closed by the caller. When
// stream is set, no client timeout applies.
func (r *Runner) apiCall(
	method, path string, stream bool, body io.Reader) (io.ReadCloser, error) {

	req, err := http.NewRequest(method,
		fmt.Sprintf("http://%s%s", r.Address, path), body)
	if err != nil {
		return nil, err
	}

	client := &http.Client{}
	if !stream {
		client.Timeout = 60 * time.Second
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s", strings.TrimSpace(string(msg)))
	}

	return resp.Body, nil
}

// GetUserConfirmation presents msg and waits for a yes/no answer on stdin.
func GetUserConfirmation(msg string) bool {
	fmt.Printf("%s [y/N] ", msg)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
