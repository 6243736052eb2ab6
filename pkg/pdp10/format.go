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
	"strings"
)

//
const sixbitBias = 0o40

// SplitOctal renders w as its two halfwords, each six octal digits, joined
// by a comma. This is the conventional PDP-10 console notation.
func (w Word) SplitOctal() string {
	l, r := w.Halves()
	return fmt.Sprintf("%06o,%06o", uint64(l), uint64(r))
}

// Octal renders w as one 12-digit octal number.
func (w Word) Octal() string {
	return fmt.Sprintf("%012o", uint64(w&WordMask))
}

// Hex renders w as a 9-digit upper-case hexadecimal number.
func (w Word) Hex() string {
	return fmt.Sprintf("%09X", uint64(w&WordMask))
}

// Binary renders w as a 36-digit binary number.
func (w Word) Binary() string {
	return fmt.Sprintf("%036b", uint64(w&WordMask))
}

// Sixbit renders w as six SIXBIT characters, most significant field first.
// Each 6-bit field is offset by octal 40 into the ASCII range. The bias is
// a fixed historical mapping, not a printability filter; every field value
// yields exactly one character.
func (w Word) Sixbit() string {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		c := byte((w>>uint((5-i)*6))&0o77) + sixbitBias
		sb.WriteByte(c)
	}
	return sb.String()
}

// ASCII renders w as five 7-bit ASCII characters packed from bit 29 down to
// bit 1, with bit 0 unused. Unlike SIXBIT, this is a printability filter:
// characters outside [32,127) come out as '.'.
func (w Word) ASCII() string {
	var sb strings.Builder
	for i := 0; i < 5; i++ {
		c := byte((w >> uint(29-i*7)) & 0x7F)
		if c < 0x20 || c >= 0x7F {
			c = '.'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Formatter renders a Word in one display mode.
type Formatter func(Word) string

// NewFormatter returns the formatter for the given display mode. Supported
// modes are 'split-octal', 'octal', 'hex', 'binary', 'sixbit' and 'ascii'.
func NewFormatter(mode string) (Formatter, error) {

	switch mode {

	case "split-octal":
		return Word.SplitOctal, nil

	case "octal":
		return Word.Octal, nil

	case "hex":
		return Word.Hex, nil

	case "binary":
		return Word.Binary, nil

	case "sixbit":
		return Word.Sixbit, nil

	case "ascii":
		return Word.ASCII, nil

	default:
		return nil, fmt.Errorf("unsupported display mode: %s", mode)
	}
}
