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
func NewSearch() *Search {

	s := &Search{}
	s.Runner = *NewRunner(
		`search -d|--drive {drive} -e|--expr {pattern} [-s|--start {word}]
      [-p|--port {port}]`,
		"search for word pattern",
		`
Use the search command to find the first occurrence of a word pattern in a
mounted image. The pattern is one or more octal words, separated by spaces;
each word may use the split (comma) or full octal form.`,
		s.Run)

	s.AddBaseSettings()
	s.AddIntSetting(&s.Drive, "drive", "d", "", 1, "drive number (1-8)", false)
	s.AddStringSetting(&s.Pattern, "expr", "e", "", "",
		"octal word pattern", true)
	s.AddIntSetting(&s.Start, "start", "s", "", 0,
		"word index to start from", false)

	return s
}

//
type Search struct {
	//
	Runner
	//
	Drive   int
	Pattern string
	Start   int
}

//
func (s *Search) Run() error {

	if err := s.ParseSettings(); err != nil {
		return err
	}

	if err := validateDrive(s.Drive); err != nil {
		return err
	}

	resp, err := s.apiCall("GET",
		fmt.Sprintf("/drive/%d/search?pattern=%s&start=%d",
			s.Drive, url.QueryEscape(s.Pattern), s.Start),
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
