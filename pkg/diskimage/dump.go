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

package diskimage

import (
	"fmt"
	"io"
)

// Emit writes a textual dump of count words starting at word index start:
// one line per word with its octal index, split octal value, SIXBIT and
// ASCII renderings. Like GetWords, it truncates at the end of the buffer.
func (d *DiskImage) Emit(w io.Writer, start, count int) {

	words := d.GetWords(start, count)

	for ix, word := range words {
		fmt.Fprintf(w, "%08o  %s  |%s|%s|\n",
			start+ix, word.SplitOctal(), word.Sixbit(), word.ASCII())
	}
}

// EmitSector dumps one sector, prefixed with a header line giving the
// sector's physical address when the image has a geometry.
func (d *DiskImage) EmitSector(w io.Writer, sector int) error {

	words, err := d.GetSector(sector)
	if err != nil {
		return err
	}

	if g := d.Geometry(); g != nil {
		fmt.Fprintf(w, "sector %d (%s): %s\n",
			sector, g.Name, SectorToCHS(sector, *g))
	} else {
		fmt.Fprintf(w, "sector %d\n", sector)
	}

	wps := d.WordsPerSector()
	for ix, word := range words {
		fmt.Fprintf(w, "%08o  %s  |%s|%s|\n",
			sector*wps+ix, word.SplitOctal(), word.Sixbit(), word.ASCII())
	}

	return nil
}
