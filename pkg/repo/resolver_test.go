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

package repo

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestResolve(t *testing.T) {

	dir := t.TempDir()
	content := []byte{0o324, 0o021, 0, 0, 0, 0, 0, 0}
	assert.NoError(t,
		os.WriteFile(filepath.Join(dir, "test.dsk"), content, 0644))

	t.Run("repo reference", func(t *testing.T) {
		src, err := Resolve("repo://test.dsk", dir)
		assert.NoError(t, err)
		defer src.Close()

		got, err := io.ReadAll(src)
		assert.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("repository not enabled", func(t *testing.T) {
		_, err := Resolve("repo://test.dsk", "")
		assert.Error(t, err, "image repository is not enabled")
	})

	t.Run("unsupported reference", func(t *testing.T) {
		_, err := Resolve("http://example.com/test.dsk", dir)
		assert.Error(t, err,
			"unsupported image reference: http://example.com/test.dsk")
	})

	t.Run("escaping reference", func(t *testing.T) {
		_, err := Resolve("repo://../test.dsk", dir)
		assert.Error(t, err,
			"image reference escapes repository: repo://../test.dsk")
	})
}

func TestIsReference(t *testing.T) {
	assert.True(t, IsReference("repo://test.dsk"))
	assert.False(t, IsReference("test.dsk"))
	assert.False(t, IsReference("/tmp/test.dsk"))
}
