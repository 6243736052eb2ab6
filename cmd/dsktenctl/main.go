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

package main

import (
	"fmt"
	"os"

	"github.com/averbach/dskten/pkg/run"
)

//
var DskTenVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: dsktenctl {serve|ls|load|unload|save|blank|dump|info|peek|poke|search|version} ...

run 'dsktenctl {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nDskTen %s\n\n", DskTenVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "serve":
		version()
		run.DieOnError(run.NewServe().Execute(args))

	case "ls":
		run.DieOnError(run.NewList().Execute(args))

	case "load":
		run.DieOnError(run.NewLoad().Execute(args))

	case "unload":
		run.DieOnError(run.NewUnload().Execute(args))

	case "save":
		run.DieOnError(run.NewSave().Execute(args))

	case "blank":
		run.DieOnError(run.NewBlank().Execute(args))

	case "dump":
		run.DieOnError(run.NewDump().Execute(args))

	case "info":
		run.DieOnError(run.NewInfo().Execute(args))

	case "peek":
		run.DieOnError(run.NewPeek().Execute(args))

	case "poke":
		run.DieOnError(run.NewPoke().Execute(args))

	case "search":
		run.DieOnError(run.NewSearch().Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		run.Die("unknown action: %s\n", action)
	}
}
