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
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/averbach/dskten/pkg/diskimage"
)

//
const DriveCount = 8

//
const (
	StatusEmpty = "empty"
	StatusIdle  = "idle"
	StatusBusy  = "busy"
)

//
const lockTimeout = time.Second

// Daemon is the mount table behind the API server: a fixed number of drive
// slots, each optionally holding a disk image. It serializes all image
// access, which the image core itself deliberately does not.
type Daemon struct {
	//
	drives []*drive
}

//
func NewDaemon() *Daemon {

	d := &Daemon{drives: make([]*drive, DriveCount)}
	for ix := range d.drives {
		d.drives[ix] = newDrive()
	}

	return d
}

/*
	GetImage gets the image mounted in drive ix (1-based), locking the
	drive. When the drive is empty, it returns (nil, true). When the drive
	is locked elsewhere beyond the lock timeout, it returns (nil, false).
	Callers that received an image must release the drive via UnlockDrive
	when they are done with it.
*/
func (d *Daemon) GetImage(ix int) (*diskimage.DiskImage, bool) {

	drv := d.getDrive(ix)
	if drv == nil || drv.getImage() == nil {
		return nil, true
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if !drv.Lock(ctx) {
		return nil, false
	}

	if img := drv.getImage(); img != nil {
		return img, true
	}

	// unloaded while we waited for the lock
	drv.Unlock()
	return nil, true
}

// SetImage mounts an image into drive ix (1-based). A modified image
// already present is only replaced when force is set.
func (d *Daemon) SetImage(ix int, img *diskimage.DiskImage, force bool) error {

	drv := d.getDrive(ix)
	if drv == nil {
		return fmt.Errorf("invalid drive: %d", ix)
	}

	present, ok := d.GetImage(ix)
	if !ok {
		return fmt.Errorf("could not lock drive %d", ix)
	}

	if present != nil {
		defer drv.Unlock()
		if !force && present.IsModified() {
			return fmt.Errorf("image in drive %d is modified", ix)
		}
	}

	drv.setImage(img)

	if img != nil {
		log.WithFields(log.Fields{
			"drive": ix,
			"name":  img.Name(),
		}).Info("image mounted")
	} else {
		log.WithField("drive", ix).Info("drive unloaded")
	}

	return nil
}

// UnloadImage empties drive ix (1-based), refusing to drop a modified
// image unless force is set.
func (d *Daemon) UnloadImage(ix int, force bool) error {
	return d.SetImage(ix, nil, force)
}

// UnlockDrive releases the drive lock taken by GetImage.
func (d *Daemon) UnlockDrive(ix int) {
	if drv := d.getDrive(ix); drv != nil {
		drv.Unlock()
	}
}

//
func (d *Daemon) GetStatus(ix int) string {

	drv := d.getDrive(ix)
	if drv == nil {
		return StatusEmpty
	}

	if drv.IsLocked() {
		return StatusBusy
	}

	if drv.getImage() == nil {
		return StatusEmpty
	}

	return StatusIdle
}

//
func (d *Daemon) getDrive(ix int) *drive {
	if 0 < ix && ix <= len(d.drives) {
		return d.drives[ix-1]
	}
	return nil
}
