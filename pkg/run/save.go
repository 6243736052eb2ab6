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
	"bufio"
	"fmt"
	"io"
	"os"
)

//
func NewSave() *Save {

	s := &Save{}
	s.Runner = *NewRunner(
		"save -d|--drive {drive} -o|--output {file} [-p|--port {port}]",
		"save drive image to file",
		`
Use the save command to download the image of a daemon drive into a local
file. The file receives the exact current buffer contents, byte for byte.`,
		s.Run)

	s.AddBaseSettings()
	s.AddIntSetting(&s.Drive, "drive", "d", "", 1, "drive number (1-8)", false)
	s.AddStringSetting(&s.File, "output", "o", "", "",
		"image output file", true)

	return s
}

//
type Save struct {
	//
	Runner
	//
	Drive int
	File  string
}

//
func (s *Save) Run() error {

	if err := s.ParseSettings(); err != nil {
		return err
	}

	if err := validateDrive(s.Drive); err != nil {
		return err
	}

	resp, err := s.apiCall("GET",
		fmt.Sprintf("/drive/%d", s.Drive), false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	f, err := os.Create(s.File)
	if err != nil {
		return err
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	n, err := io.Copy(out, resp)
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}

	fmt.Printf("saved %d bytes to %s\n", n, s.File)
	return nil
}
