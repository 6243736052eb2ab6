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
)

//
func NewPeek() *Peek {

	p := &Peek{}
	p.Runner = *NewRunner(
		`peek -d|--drive {drive} -w|--word {index} [--format {mode}]
      [-p|--port {port}]`,
		"read one word from a drive",
		`
Use the peek command to read a single word. Without a display mode, the word
is shown in every mode at once; with one, only that rendering is printed.
Modes: split-octal, octal, hex, binary, sixbit, ascii.`,
		p.Run)

	p.AddBaseSettings()
	p.AddIntSetting(&p.Drive, "drive", "d", "", 1, "drive number (1-8)", false)
	p.AddIntSetting(&p.Word, "word", "w", "", 0, "word index", false)
	p.AddStringSetting(&p.Format, "format", "", "", "", "display mode", false)

	return p
}

//
type Peek struct {
	//
	Runner
	//
	Drive  int
	Word   int
	Format string
}

//
func (p *Peek) Run() error {

	if err := p.ParseSettings(); err != nil {
		return err
	}

	if err := validateDrive(p.Drive); err != nil {
		return err
	}

	path := fmt.Sprintf("/drive/%d/word/%d", p.Drive, p.Word)
	if p.Format != "" {
		path = fmt.Sprintf("%s?format=%s", path, url.QueryEscape(p.Format))
	}

	resp, err := p.apiCall("GET", path, false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	if _, err := io.Copy(os.Stdout, resp); err != nil {
		return err
	}

	return nil
}
