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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseOctal(t *testing.T) {

	t.Run("comma form", func(t *testing.T) {
		w, err := ParseOctal("123456,654321")
		assert.NoError(t, err)
		assert.Equal(t, Word(0o123456654321), w)
	})

	t.Run("full form", func(t *testing.T) {
		w, err := ParseOctal("254000001234")
		assert.NoError(t, err)
		assert.Equal(t, Word(0o254000001234), w)
	})

	t.Run("whitespace ignored", func(t *testing.T) {
		w, err := ParseOctal("  777 , 1  ")
		assert.NoError(t, err)
		assert.Equal(t, JoinHalves(0o777, 1), w)
	})

	t.Run("masks to 36 bits", func(t *testing.T) {
		w, err := ParseOctal("1777777777777")
		assert.NoError(t, err)
		assert.Equal(t, WordMask, w)
	})

	t.Run("rejects non-octal digits", func(t *testing.T) {
		_, err := ParseOctal("1238")
		assert.True(t, errors.Is(err, ErrParse))

		_, err = ParseOctal("12,8")
		assert.True(t, errors.Is(err, ErrParse))

		_, err = ParseOctal("")
		assert.True(t, errors.Is(err, ErrParse))
	})

	t.Run("round trips formatting", func(t *testing.T) {
		for _, w := range []Word{0, 1, 0o123456654321, WordMask} {
			got, err := ParseOctal(w.SplitOctal())
			assert.NoError(t, err)
			assert.Equal(t, w, got)

			got, err = ParseOctal(w.Octal())
			assert.NoError(t, err)
			assert.Equal(t, w, got)
		}
	})
}

func TestParseHex(t *testing.T) {

	t.Run("round trips formatting", func(t *testing.T) {
		for _, w := range []Word{0, 0xCAFE, WordMask} {
			got, err := ParseHex(w.Hex())
			assert.NoError(t, err)
			assert.Equal(t, w, got)
		}
	})

	t.Run("rejects non-hex characters", func(t *testing.T) {
		_, err := ParseHex("12G4")
		assert.True(t, errors.Is(err, ErrParse))
	})
}

func TestParseSixbit(t *testing.T) {

	t.Run("round trips encode", func(t *testing.T) {
		for _, s := range []string{"FISKTE", "      ", "A1B2C3", "[\\]^_ "} {
			w, err := ParseSixbit(s)
			assert.NoError(t, err)
			assert.Equal(t, s, w.Sixbit())
		}
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseSixbit("ABC")
		assert.True(t, errors.Is(err, ErrParse))
	})
}

func TestParseWord(t *testing.T) {

	w, err := ParseWord("123456,654321", "split-octal")
	assert.NoError(t, err)
	assert.Equal(t, Word(0o123456654321), w)

	w, err = ParseWord("FFFFFFFFF", "hex")
	assert.NoError(t, err)
	assert.Equal(t, WordMask, w)

	_, err = ParseWord("101", "binary")
	assert.True(t, errors.Is(err, ErrParse))
}
