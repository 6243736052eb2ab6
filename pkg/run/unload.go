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
)

//
func NewUnload() *Unload {

	u := &Unload{}
	u.Runner = *NewRunner(
		"unload -d|--drive {drive} [-f|--force] [-p|--port {port}]",
		"unload drive",
		`
Use the unload command to empty a daemon drive. A modified image is only
dropped when forcing; save it first if its content matters.`,
		u.Run)

	u.AddBaseSettings()
	u.AddIntSetting(&u.Drive, "drive", "d", "", 1, "drive number (1-8)", false)
	u.AddBoolSetting(&u.Force, "force", "f", "", false,
		"unload even if image is modified", false)

	return u
}

//
type Unload struct {
	//
	Runner
	//
	Drive int
	Force bool
}

//
func (u *Unload) Run() error {

	if err := u.ParseSettings(); err != nil {
		return err
	}

	if err := validateDrive(u.Drive); err != nil {
		return err
	}

	resp, err := u.apiCall("GET",
		fmt.Sprintf("/drive/%d/unload?force=%v", u.Drive, u.Force),
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
