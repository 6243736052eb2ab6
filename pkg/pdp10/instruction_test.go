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

func TestFields(t *testing.T) {

	t.Run("jrst", func(t *testing.T) {
		// JRST 1234
		i := Word(0o254000001234).Fields()
		assert.Equal(t, Word(0o254), i.Opcode)
		assert.Equal(t, Word(0), i.AC)
		assert.False(t, i.Indirect)
		assert.Equal(t, Word(0), i.Index)
		assert.Equal(t, Word(0o1234), i.Address)
		assert.Equal(t, "254 00 0 00 001234", i.String())
	})

	t.Run("indexed indirect", func(t *testing.T) {
		// MOVE 3,@100(17)
		i := Word(0o200177000100).Fields()
		assert.Equal(t, Word(0o200), i.Opcode)
		assert.Equal(t, Word(3), i.AC)
		assert.True(t, i.Indirect)
		assert.Equal(t, Word(0o17), i.Index)
		assert.Equal(t, Word(0o100), i.Address)
	})

	t.Run("all fields saturated", func(t *testing.T) {
		i := WordMask.Fields()
		assert.Equal(t, Word(0o777), i.Opcode)
		assert.Equal(t, Word(0o17), i.AC)
		assert.True(t, i.Indirect)
		assert.Equal(t, Word(0o17), i.Index)
		assert.Equal(t, HalfMask, i.Address)
	})
}
