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
	"encoding/binary"
)

// Word is a PDP-10 machine word, 36 significant bits held in the low end of
// a uint64. Every operation in this package masks its result, so a Word
// obtained from here never carries anything above bit 35.
type Word uint64

//
const (
	// WordBits is the number of significant bits in a Word.
	WordBits = 36

	// WordMask selects the 36 significant bits of a Word.
	WordMask Word = 0o777777777777

	// HalfMask selects one 18-bit halfword.
	HalfMask Word = 0o777777

	// BytesPerWord is the size of the storage slot for one Word in a disk
	// image: a 64-bit little-endian unit with the top 28 bits unused.
	BytesPerWord = 8
)

// DecodeWord reads one Word from the first 8 bytes of b, interpreted as an
// unsigned 64-bit little-endian integer. The top 28 bits of the slot are
// discarded; any byte pattern decodes without error.
func DecodeWord(b []byte) Word {
	return Word(binary.LittleEndian.Uint64(b)) & WordMask
}

// Put writes w into the first 8 bytes of b as an unsigned 64-bit
// little-endian integer, top 28 bits zero. Values above 36 bits are masked,
// not rejected; this matches how the words were archived in the first place.
func (w Word) Put(b []byte) {
	binary.LittleEndian.PutUint64(b, uint64(w&WordMask))
}

// Bytes returns the 8-byte storage slot encoding of w.
func (w Word) Bytes() []byte {
	b := make([]byte, BytesPerWord)
	w.Put(b)
	return b
}

// Halves splits w into its left (high) and right (low) 18-bit halfwords.
func (w Word) Halves() (left, right Word) {
	return (w >> 18) & HalfMask, w & HalfMask
}

// Left returns the high 18-bit halfword of w.
func (w Word) Left() Word {
	return (w >> 18) & HalfMask
}

// Right returns the low 18-bit halfword of w.
func (w Word) Right() Word {
	return w & HalfMask
}

// JoinHalves combines two 18-bit halfwords into one Word. Both inputs are
// masked to 18 bits first, so oversized halves are truncated, not rejected.
func JoinHalves(left, right Word) Word {
	return (left&HalfMask)<<18 | right&HalfMask
}
