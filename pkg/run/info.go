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
func NewInfo() *Info {

	i := &Info{}
	i.Runner = *NewRunner(
		`info [-d|--drive {drive}] [-g|--geometry {model}] [-s|--sector {sector}]
      [-p|--port {port}]`,
		"show drive & geometry info",
		`
Use the info command to show details for a mounted image, or to translate a
linear sector index into its physical cylinder/head/sector address for a
given drive model. Without flags, the cataloged drive models are listed.`,
		i.Run)

	i.AddBaseSettings()
	i.AddIntSetting(&i.Drive, "drive", "d", "", 0, "drive number (1-8)", false)
	i.AddStringSetting(&i.Model, "geometry", "g", "", "",
		"drive model for sector translation", false)
	i.AddIntSetting(&i.Sector, "sector", "s", "", -1,
		"linear sector index to translate", false)

	return i
}

//
type Info struct {
	//
	Runner
	//
	Drive  int
	Model  string
	Sector int
}

//
func (i *Info) Run() error {

	if err := i.ParseSettings(); err != nil {
		return err
	}

	if i.Model != "" {
		g, err := diskimage.Lookup(i.Model)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n%d sectors, %d bytes\n",
			g, g.TotalSectors(), g.TotalBytes())

		if i.Sector >= 0 {
			if i.Sector >= g.TotalSectors() {
				return fmt.Errorf("sector %d beyond drive end (%d sectors)",
					i.Sector, g.TotalSectors())
			}
			fmt.Printf("sector %d: %s\n",
				i.Sector, diskimage.SectorToCHS(i.Sector, *g))
		}

		return nil
	}

	if i.Drive == 0 {
		for _, g := range diskimage.Catalog() {
			fmt.Printf("%s\n", g)
		}
		return nil
	}

	if err := validateDrive(i.Drive); err != nil {
		return err
	}

	resp, err := i.apiCall("GET",
		fmt.Sprintf("/drive/%d/info", i.Drive), false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	if _, err := io.Copy(os.Stdout, resp); err != nil {
		return err
	}

	return nil
}
