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
)

//
func NewPoke() *Poke {

	p := &Poke{}
	p.Runner = *NewRunner(
		`poke -d|--drive {drive} -w|--word {index} -v|--value {text}
      [--format {mode}] [-p|--port {port}]`,
		"write one word to a drive",
		`
Use the poke command to overwrite a single word. The value is parsed in the
given display mode (default octal; split octal with a comma works as well).
A value that does not parse leaves the word unchanged.`,
		p.Run)

	p.AddBaseSettings()
	p.AddIntSetting(&p.Drive, "drive", "d", "", 1, "drive number (1-8)", false)
	p.AddIntSetting(&p.Word, "word", "w", "", 0, "word index", false)
	p.AddStringSetting(&p.Value, "value", "v", "", "", "word value", true)
	p.AddStringSetting(&p.Format, "format", "", "", "octal",
		"display mode of value", false)

	return p
}

//
type Poke struct {
	//
	Runner
	//
	Drive  int
	Word   int
	Value  string
	Format string
}

//
func (p *Poke) Run() error {

	if err := p.ParseSettings(); err != nil {
		return err
	}

	if err := validateDrive(p.Drive); err != nil {
		return err
	}

	resp, err := p.apiCall("PUT",
		fmt.Sprintf("/drive/%d/word/%d?value=%s&format=%s",
			p.Drive, p.Word, url.QueryEscape(p.Value),
			url.QueryEscape(p.Format)),
		false, nil)
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
