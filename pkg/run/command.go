/*
   DskTen - PDP-10 disk image toolkit
   Copyright (c) 2023, Martin Averbach

   This file is part of DskTen.

   DskTen is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   DskTen is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with DskTen. If not, see <http://www.gnu.org/licenses/>.
*/

package run

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

/*
	The package initializer sets up logging based on logrus. The following
	environment variables can be used to configure logging:

		LOG_FORMAT		set to `json` for JSON logging
		LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
		LOG_METHODS		set to non-empty for including methods in log
		LOG_LEVEL		`panic`, `fatal`, `error`, `warn`, `info`, `debug`, `trace`
*/
func init() {

	log.SetOutput(os.Stdout)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if strings.ToLower(os.Getenv("LOG_FORCE_COLORS")) != "" {
		log.SetFormatter(&log.TextFormatter{
			ForceColors: true,
		})
	}

	if strings.ToLower(os.Getenv("LOG_METHODS")) != "" {
		log.SetReportCaller(true)
	}

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			log.Errorf("invalid log level: '%s'; valid levels are: panic, "+
				"fatal, error, warn, info, debug, trace", level)
		} else {
			log.SetLevel(l)
		}
	}
}

//
var (
	UnderTest bool
)

// DieOnError exits the running process if e is not nil.
func DieOnError(e error) {
	if e != nil {
		fmt.Printf("%v\n", e)
		if UnderTest {
			panic(e.Error())
		} else {
			os.Exit(1)
		}
	}
}

// Die exits the running process, while logging the given message.
func Die(msg string, params ...interface{}) {
	if UnderTest {
		err := fmt.Sprintf(msg, params...)
		fmt.Print(err)
		panic(err)
	} else {
		if len(params) > 0 {
			fmt.Printf(msg, params...)
		} else {
			fmt.Println(msg)
		}
		os.Exit(1)
	}
}

/*
	NewCommand creates a base command instance, wrapping a new Cobra
	command. The exec function is invoked when the command's Execute
	method is called.
*/
func NewCommand(use, short, long string, exec func() error) *Command {
	return &Command{
		cmd: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
			RunE: func(*cobra.Command, []string) error {
				return exec()
			},
			SilenceErrors:         true,
			SilenceUsage:          true,
			DisableFlagsInUseLine: true,
		},
	}
}

/*
	Command is a wrapper around Cobra & Viper. Settings are bound to
	command line flags as usual, with an optional environment variable as
	fallback. Resolution order is flag, then environment, then default.
	Required settings must arrive through one of the first two.
*/
type Command struct {
	//
	cmd *cobra.Command
	//
	settings []*setting
	//
	Args []string
}

//
type setting struct {
	flag     string
	env      string
	required bool
	apply    func()
	isSet    func() bool
}

/*
	Execute invokes the exec function that was set on this command when it
	was created. If args is of non-zero length, it overrides os.Args.
*/
func (c *Command) Execute(args []string) error {
	if len(args) > 0 {
		c.cmd.SetArgs(args)
	}
	return c.cmd.Execute()
}

// AddStringSetting adds a string setting, bound to target.
func (c *Command) AddStringSetting(target *string, flag, short, env, def,
	help string, required bool) {

	c.cmd.Flags().StringVarP(target, flag, short, def, withEnv(help, env))
	c.bind(flag, env, required, func() {
		*target = viper.GetString(flag)
	}, func() bool {
		return *target != ""
	})
}

// AddIntSetting adds an int setting, bound to target.
func (c *Command) AddIntSetting(target *int, flag, short, env string,
	def int, help string, required bool) {

	c.cmd.Flags().IntVarP(target, flag, short, def, withEnv(help, env))
	c.bind(flag, env, required, func() {
		*target = viper.GetInt(flag)
	}, func() bool {
		return *target != 0
	})
}

// AddBoolSetting adds a bool setting, bound to target.
func (c *Command) AddBoolSetting(target *bool, flag, short, env string,
	def bool, help string, required bool) {

	c.cmd.Flags().BoolVarP(target, flag, short, def, withEnv(help, env))
	c.bind(flag, env, required, func() {
		*target = viper.GetBool(flag)
	}, func() bool {
		return *target
	})
}

//
func (c *Command) bind(flag, env string, required bool,
	apply func(), isSet func() bool) {

	viper.BindPFlag(flag, c.cmd.Flags().Lookup(flag))
	if env != "" {
		viper.BindEnv(flag, env)
	}

	c.settings = append(c.settings, &setting{
		flag:     flag,
		env:      env,
		required: required,
		apply:    apply,
		isSet:    isSet,
	})
}

/*
	ParseSettings resolves all settings that have been added thus far.
	Afterwards, setting values are available in the variables to which
	they were bound. This should be called in the exec function of the
	command, before any references to bound variables.
*/
func (c *Command) ParseSettings() error {

	c.cmd.Flags().Visit(func(f *pflag.Flag) {
		log.Tracef("flag set on command line: %s=%s", f.Name, f.Value)
	})

	for _, s := range c.settings {

		s.apply()
		log.Tracef("setting resolved: flag=%s, env=%s", s.flag, s.env)

		if s.required && !s.isSet() {
			msg := fmt.Sprintf(
				"you need to specify the --%s command line flag", s.flag)
			if s.env != "" {
				msg = fmt.Sprintf(
					"%s or the %s environment variable", msg, s.env)
			}
			return fmt.Errorf("%s", msg)
		}
	}

	c.Args = c.cmd.Flags().Args()
	return nil
}

//
func withEnv(help, env string) string {
	if env == "" {
		return help
	}
	return fmt.Sprintf("%s (%s)", help, env)
}
