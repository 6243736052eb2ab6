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
	"os"

	"github.com/averbach/dskten/pkg/diskimage"
)

//
func NewDump() *Dump {

	d := &Dump{}
	d.Runner = *NewRunner(
		`dump [-d|--drive {drive}] [-i|--input {file}] [-s|--start {word}]
      [-c|--count {words}] [-p|--port {port}]`,
		"dump words from drive or file",
		`
Use the dump command to output a word dump for an image, either mounted in a
daemon drive or read from a local file. Each line shows the word index and
the word in split octal, SIXBIT and ASCII.`,
		d.Run)

	d.AddBaseSettings()
	d.AddIntSetting(&d.Drive, "drive", "d", "", 1, "drive number (1-8)", false)
	d.AddStringSetting(&d.File, "input", "i", "", "", "image input file", false)
	d.AddIntSetting(&d.Start, "start", "s", "", 0, "first word index", false)
	d.AddIntSetting(&d.Count, "count", "c", "", 128, "number of words", false)

	return d
}

//
type Dump struct {
	//
	Runner
	//
	Drive int
	File  string
	Start int
	Count int
}

//
func (d *Dump) Run() error {

	if err := d.ParseSettings(); err != nil {
		return err
	}

	if d.File != "" {
		data, err := os.ReadFile(d.File)
		if err != nil {
			return err
		}

		img := diskimage.Load(d.File, data)
		img.Emit(os.Stdout, d.Start, d.Count)
		return nil
	}

	if err := validateDrive(d.Drive); err != nil {
		return err
	}

	resp, err := d.apiCall("GET",
		fmt.Sprintf("/drive/%d/dump?start=%d&count=%d",
			d.Drive, d.Start, d.Count), false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	if _, err := io.Copy(os.Stdout, resp); err != nil {
		return err
	}

	return nil
}
