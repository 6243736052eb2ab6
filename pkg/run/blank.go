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

	"github.com/averbach/dskten/pkg/diskimage"
)

//
func NewBlank() *Blank {

	b := &Blank{}
	b.Runner = *NewRunner(
		`blank -g|--geometry {model} [-d|--drive {drive}] [-o|--output {file}]
      [-f|--force] [-p|--port {port}]`,
		"create blank disk image",
		`
Use the blank command to create a zero-filled disk image for a cataloged
drive model, either mounted into a daemon drive or written to a local file.`,
		b.Run)

	b.AddBaseSettings()
	b.AddStringSetting(&b.Model, "geometry", "g", "", "",
		"drive model, e.g. RP04", true)
	b.AddIntSetting(&b.Drive, "drive", "d", "", 0, "drive number (1-8)", false)
	b.AddStringSetting(&b.File, "output", "o", "", "",
		"image output file", false)
	b.AddBoolSetting(&b.Force, "force", "f", "", false,
		"replace image even if modified", false)

	return b
}

//
type Blank struct {
	//
	Runner
	//
	Model string
	Drive int
	File  string
	Force bool
}

//
func (b *Blank) Run() error {

	if err := b.ParseSettings(); err != nil {
		return err
	}

	if b.File != "" {
		img, err := diskimage.NewBlank(b.Model)
		if err != nil {
			return err
		}
		if err := os.WriteFile(b.File, img.Bytes(), 0644); err != nil {
			return err
		}
		fmt.Printf("created blank %s image in %s (%d bytes)\n",
			b.Model, b.File, len(img.Bytes()))
		return nil
	}

	if err := validateDrive(b.Drive); err != nil {
		return err
	}

	resp, err := b.apiCall("POST",
		fmt.Sprintf("/drive/%d/blank?geometry=%s&force=%v",
			b.Drive, url.QueryEscape(b.Model), b.Force),
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
