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
	"context"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/averbach/dskten/pkg/diskimage"
)

/*
	drive is one mount slot of the daemon. The disk image core provides no
	synchronization of its own, so all access to a mounted image funnels
	through the drive's lock. Lock holders must call Unlock when done with
	the image.
*/
type drive struct {
	//
	image atomic.Value
	//
	lock chan bool
}

//
func newDrive() *drive {
	d := &drive{lock: make(chan bool, 1)}
	d.image.Store((*diskimage.DiskImage)(nil))
	return d
}

//
func (d *drive) Lock(ctx context.Context) bool {
	select {
	case d.lock <- true:
		log.Trace("drive locked")
		return true
	case <-ctx.Done():
		log.Debug("drive lock timed out")
		return false
	}
}

//
func (d *drive) Unlock() {
	select {
	case <-d.lock:
		log.Trace("drive unlocked")
	default:
		log.Trace("drive was already unlocked")
	}
}

//
func (d *drive) IsLocked() bool {
	return len(d.lock) > 0
}

//
func (d *drive) getImage() *diskimage.DiskImage {
	return d.image.Load().(*diskimage.DiskImage)
}

//
func (d *drive) setImage(img *diskimage.DiskImage) {
	d.image.Store(img)
}
