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

package daemon

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/averbach/dskten/pkg/diskimage"
)

func TestMountUnmount(t *testing.T) {

	d := NewDaemon()
	img := diskimage.Load("test", make([]byte, 1024))

	assert.Equal(t, StatusEmpty, d.GetStatus(1))

	assert.NoError(t, d.SetImage(1, img, false))
	assert.Equal(t, StatusIdle, d.GetStatus(1))

	got, ok := d.GetImage(1)
	assert.True(t, ok)
	assert.False(t, got == nil)
	assert.Equal(t, StatusBusy, d.GetStatus(1))
	d.UnlockDrive(1)
	assert.Equal(t, StatusIdle, d.GetStatus(1))

	assert.NoError(t, d.UnloadImage(1, false))
	assert.Equal(t, StatusEmpty, d.GetStatus(1))
}

func TestModifiedProtection(t *testing.T) {

	d := NewDaemon()
	img := diskimage.Load("test", make([]byte, 1024))
	assert.NoError(t, d.SetImage(2, img, false))

	assert.NoError(t, img.SetWord(0, 42))
	assert.True(t, img.IsModified())

	err := d.UnloadImage(2, false)
	assert.Error(t, err, "image in drive 2 is modified")
	assert.Equal(t, StatusIdle, d.GetStatus(2))

	assert.NoError(t, d.UnloadImage(2, true))
	assert.Equal(t, StatusEmpty, d.GetStatus(2))
}

func TestEmptyAndInvalidDrives(t *testing.T) {

	d := NewDaemon()

	img, ok := d.GetImage(3)
	assert.True(t, ok)
	assert.True(t, img == nil)

	err := d.SetImage(0, nil, false)
	assert.Error(t, err, "invalid drive: 0")
	err = d.SetImage(DriveCount+1, nil, false)
	assert.Error(t, err, "invalid drive: 9")
	assert.Equal(t, StatusEmpty, d.GetStatus(0))
}

func TestLockContention(t *testing.T) {

	d := NewDaemon()
	img := diskimage.Load("test", make([]byte, 1024))
	assert.NoError(t, d.SetImage(4, img, false))

	_, ok := d.GetImage(4)
	assert.True(t, ok)

	// second access times out while the drive is held
	got, ok := d.GetImage(4)
	assert.False(t, ok)
	assert.True(t, got == nil)

	d.UnlockDrive(4)
	_, ok = d.GetImage(4)
	assert.True(t, ok)
	d.UnlockDrive(4)
}
