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
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/averbach/dskten/pkg/repo"
)

//
func NewLoad() *Load {

	l := &Load{}
	l.Runner = *NewRunner(
		`load -d|--drive {drive} -i|--input {file|repo://ref} [--name {name}]
      [-f|--force] [-p|--port {port}]`,
		"load disk image into drive",
		`
Use the load command to mount a disk image into a daemon drive. The input is
either a local file, which gets uploaded, or a repo:// reference resolved
against the repository folder of the daemon.`,
		l.Run)

	l.AddBaseSettings()
	l.AddIntSetting(&l.Drive, "drive", "d", "", 1, "drive number (1-8)", false)
	l.AddStringSetting(&l.File, "input", "i", "", "",
		"image file or repo:// reference", true)
	l.AddStringSetting(&l.Name, "name", "n", "", "", "display name", false)
	l.AddBoolSetting(&l.Force, "force", "f", "", false,
		"replace image even if modified", false)

	return l
}

//
type Load struct {
	//
	Runner
	//
	Drive int
	File  string
	Name  string
	Force bool
}

//
func (l *Load) Run() error {

	if err := l.ParseSettings(); err != nil {
		return err
	}

	if err := validateDrive(l.Drive); err != nil {
		return err
	}

	name := l.Name
	if name == "" {
		name = filepath.Base(l.File)
	}

	path := fmt.Sprintf("/drive/%d?name=%s&force=%v",
		l.Drive, url.QueryEscape(name), l.Force)

	var body io.Reader

	if repo.IsReference(l.File) {
		path = fmt.Sprintf("%s&ref=%s", path, url.QueryEscape(l.File))

	} else {
		f, err := os.Open(l.File)
		if err != nil {
			return err
		}
		defer f.Close()
		body = f
	}

	resp, err := l.apiCall("PUT", path, false, body)
	if err != nil {
		return err
	}
	defer resp.Close()

	msg, err := io.ReadAll(resp)
	if err != nil {
		return err
	}

	fmt.Printf("%s", msg)
	return nil
}
