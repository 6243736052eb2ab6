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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeWord(t *testing.T) {

	t.Run("zero slot", func(t *testing.T) {
		b := make([]byte, 8)
		assert.Equal(t, Word(0), DecodeWord(b))
	})

	t.Run("discards slot bits above 35", func(t *testing.T) {
		b := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
		assert.Equal(t, WordMask, DecodeWord(b))
	})

	t.Run("little endian", func(t *testing.T) {
		b := []byte{0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00}
		assert.Equal(t, Word(0x04030201), DecodeWord(b))
	})
}

func TestWordPut(t *testing.T) {

	t.Run("all bits set", func(t *testing.T) {
		b := Word(0o777777777777).Bytes()
		assert.Equal(t,
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 0x00, 0x00, 0x00}, b)
	})

	t.Run("masks out-of-range input", func(t *testing.T) {
		b := Word(0xFFFFFFFFFFFFFFFF).Bytes()
		assert.Equal(t, WordMask, DecodeWord(b))
	})
}

func TestWordRoundTrip(t *testing.T) {

	words := []Word{
		0,
		1,
		0o123456654321,
		0o400000000000, // sign bit only
		0o525252525252,
		WordMask,
	}

	b := make([]byte, 8)
	for _, w := range words {
		w.Put(b)
		assert.Equal(t, w, DecodeWord(b))
	}
}

func TestHalves(t *testing.T) {

	t.Run("split", func(t *testing.T) {
		l, r := Word(0o123456654321).Halves()
		assert.Equal(t, Word(0o123456), l)
		assert.Equal(t, Word(0o654321), r)
	})

	t.Run("join masks halves", func(t *testing.T) {
		w := JoinHalves(0o7123456, 0o7654321)
		assert.Equal(t, Word(0o123456654321), w)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, h := range []Word{0, 1, 0o377777, 0o777777} {
			l, r := JoinHalves(h, HalfMask-h).Halves()
			assert.Equal(t, h, l)
			assert.Equal(t, HalfMask-h, r)
		}
	})
}
