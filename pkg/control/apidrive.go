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

package control

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/averbach/dskten/pkg/diskimage"
	"github.com/averbach/dskten/pkg/repo"
)

// upload cap; the largest cataloged drive is well under this
const maxImageBytes = 1 << 30

//
func (a *api) load(w http.ResponseWriter, req *http.Request) {

	drive := getDrive(w, req)
	if drive == -1 {
		return
	}

	name, err := getArg(req, "name")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	if name == "" {
		name = fmt.Sprintf("drive%d", drive)
	}

	ref, err := getArg(req, "ref")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	var source io.ReadCloser = req.Body

	if ref != "" {
		if source, err = repo.Resolve(ref, a.repository); err != nil {
			handleError(err, http.StatusUnprocessableEntity, w)
			return
		}
		if name == fmt.Sprintf("drive%d", drive) {
			name = strings.TrimPrefix(ref, repo.PrefixRepoRef)
		}
	}

	data, err := io.ReadAll(io.LimitReader(source, maxImageBytes))
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	if handleError(source.Close(), http.StatusInternalServerError, w) {
		return
	}

	img := diskimage.Load(name, data)

	if err := a.daemon.SetImage(drive, img, isFlagSet(req, "force")); err != nil {
		sendMountError(err, drive, w)
		return
	}

	msg := fmt.Sprintf("loaded image into drive %d", drive)
	if g := img.Geometry(); g != nil {
		msg = fmt.Sprintf("%s (%s)", msg, g.Name)
	} else {
		msg += " (no matching drive model)"
	}
	sendReply([]byte(msg), http.StatusOK, w)
}

//
func (a *api) blank(w http.ResponseWriter, req *http.Request) {

	drive := getDrive(w, req)
	if drive == -1 {
		return
	}

	model, err := getArg(req, "geometry")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	img, err := diskimage.NewBlank(model)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	if err := a.daemon.SetImage(drive, img, isFlagSet(req, "force")); err != nil {
		sendMountError(err, drive, w)
		return
	}

	sendReply([]byte(fmt.Sprintf(
		"created blank %s image in drive %d", model, drive)),
		http.StatusOK, w)
}

// save streams the exact image buffer, byte for byte. Writes are applied
// synchronously in place, so there is nothing to flush first.
func (a *api) save(w http.ResponseWriter, req *http.Request) {

	drive, img := a.lockedImage(w, req)
	if img == nil {
		return
	}
	defer a.daemon.UnlockDrive(drive)

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img.Bytes()); err != nil {
		return
	}

	img.SetModified(false)
}

//
func (a *api) unload(w http.ResponseWriter, req *http.Request) {

	drive := getDrive(w, req)
	if drive == -1 {
		return
	}

	if err := a.daemon.UnloadImage(drive, isFlagSet(req, "force")); err != nil {
		sendMountError(err, drive, w)
		return
	}

	sendReply([]byte(fmt.Sprintf("unloaded drive %d", drive)),
		http.StatusOK, w)
}

//
func (a *api) info(w http.ResponseWriter, req *http.Request) {

	drive, img := a.lockedImage(w, req)
	if img == nil {
		return
	}
	defer a.daemon.UnlockDrive(drive)

	inf := &Info{}
	inf.fill(img)

	if wantsJSON(req) {
		sendJSONReply(inf, http.StatusOK, w)
	} else {
		sendReply([]byte(inf.String()), http.StatusOK, w)
	}
}

//
func (a *api) dump(w http.ResponseWriter, req *http.Request) {

	drive, img := a.lockedImage(w, req)
	if img == nil {
		return
	}
	defer a.daemon.UnlockDrive(drive)

	start, err := getIntArg(req, "start", 0)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	count, err := getIntArg(req, "count", img.WordsPerSector())
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	read, write := io.Pipe()

	go func() {
		img.Emit(write, start, count)
		write.Close()
	}()

	sendStreamReply(read, http.StatusOK, w)
}

// lockedImage fetches and locks the image of the request's drive, handling
// the busy and empty cases. On success the caller owns the drive lock.
func (a *api) lockedImage(
	w http.ResponseWriter, req *http.Request) (int, *diskimage.DiskImage) {

	drive := getDrive(w, req)
	if drive == -1 {
		return -1, nil
	}

	img, ok := a.daemon.GetImage(drive)

	if !ok {
		handleError(fmt.Errorf("drive %d busy", drive), http.StatusLocked, w)
		return drive, nil
	}

	if img == nil {
		handleError(fmt.Errorf("no image in drive %d", drive),
			http.StatusUnprocessableEntity, w)
		return drive, nil
	}

	return drive, img
}

//
func sendMountError(err error, drive int, w http.ResponseWriter) {
	if strings.Contains(err.Error(), "could not lock") {
		handleError(fmt.Errorf("drive %d busy", drive), http.StatusLocked, w)
	} else if strings.Contains(err.Error(), "is modified") {
		handleError(fmt.Errorf(
			"image in drive %d is modified", drive), http.StatusConflict, w)
	} else {
		handleError(err, http.StatusInternalServerError, w)
	}
}
