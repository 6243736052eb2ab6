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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse indicates that a text input does not match the expected word
// grammar. Parse failures never produce a partial Word; the caller keeps
// whatever value it had.
var ErrParse = errors.New("parse error")

// ParseOctal interprets s as an octal word. With a comma, the two parts are
// taken as left and right halfword; without one, the whole string is one
// 36-bit octal number. Surrounding whitespace is ignored.
func ParseOctal(s string) (Word, error) {

	s = strings.TrimSpace(s)

	if l, r, ok := strings.Cut(s, ","); ok {
		left, err := parseUint(l, 8)
		if err != nil {
			return 0, err
		}
		right, err := parseUint(r, 8)
		if err != nil {
			return 0, err
		}
		return JoinHalves(left, right), nil
	}

	w, err := parseUint(s, 8)
	if err != nil {
		return 0, err
	}
	return w & WordMask, nil
}

// ParseHex interprets s as one 36-bit hexadecimal number, ignoring
// surrounding whitespace.
func ParseHex(s string) (Word, error) {
	w, err := parseUint(strings.TrimSpace(s), 16)
	if err != nil {
		return 0, err
	}
	return w & WordMask, nil
}

// ParseWord parses s according to the given display mode. Only the numeric
// modes and sixbit have a parse direction.
func ParseWord(s, mode string) (Word, error) {

	switch mode {

	case "split-octal", "octal":
		return ParseOctal(s)

	case "hex":
		return ParseHex(s)

	case "sixbit":
		return ParseSixbit(s)

	default:
		return 0, fmt.Errorf("%w: no parser for display mode %s",
			ErrParse, mode)
	}
}

// ParseSixbit is the exact inverse of Sixbit: six characters, each mapped
// back to its biased 6-bit field. Characters are masked to the field width,
// so input outside the SIXBIT range is truncated rather than rejected.
func ParseSixbit(s string) (Word, error) {

	if len(s) != 6 {
		return 0, fmt.Errorf(
			"%w: sixbit text must be 6 characters, got %d", ErrParse, len(s))
	}

	var w Word
	for i := 0; i < 6; i++ {
		w = w<<6 | Word(s[i]-sixbitBias)&0o77
	}
	return w, nil
}

//
func parseUint(s string, base int) (Word, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Word(v), nil
}
