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

package pdp10

import (
	"fmt"
)

// Instruction is the syntactic field split of a word in PDP-10 instruction
// format. This is decomposition only; no opcode semantics are attached.
type Instruction struct {
	Opcode   Word // bits 0-8
	AC       Word // bits 9-12, accumulator
	Indirect bool // bit 13
	Index    Word // bits 14-17
	Address  Word // bits 18-35, right halfword
}

// Fields decomposes w into its instruction-format fields.
func (w Word) Fields() Instruction {
	return Instruction{
		Opcode:   (w >> 27) & 0o777,
		AC:       (w >> 23) & 0o17,
		Indirect: (w>>22)&1 == 1,
		Index:    (w >> 18) & 0o17,
		Address:  w & HalfMask,
	}
}

// String renders the instruction fields in conventional octal notation,
// e.g. "254 00 0 00 001234" for a JRST.
func (i Instruction) String() string {
	ind := 0
	if i.Indirect {
		ind = 1
	}
	return fmt.Sprintf("%03o %02o %d %02o %06o",
		uint64(i.Opcode), uint64(i.AC), ind, uint64(i.Index),
		uint64(i.Address))
}
