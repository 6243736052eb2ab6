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

package diskimage

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/averbach/dskten/pkg/pdp10"
)

//
var (
	// ErrOutOfBounds indicates a word or sector index outside the image
	// buffer for an operation that requires exact containment.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrLengthMismatch indicates a sector write with the wrong number of
	// words.
	ErrLengthMismatch = errors.New("sector length mismatch")
)

/*
	DiskImage is an in-memory PDP-10 disk image: a byte buffer of 8-byte
	word slots, an optional geometry detected from the buffer size, a
	display name, and a modified flag. The buffer is the single source of
	truth; words are re-decoded on every read and re-encoded on every
	write, so no caller can observe a stale copy.

	DiskImage provides no internal synchronization. A concurrent host must
	serialize all writes against all reads on the same image; the daemon
	does this with per-drive locks.
*/
type DiskImage struct {
	//
	name     string
	data     []byte
	geometry *Geometry
	modified bool
}

// Load wraps the given bytes as a disk image, detecting the geometry from
// the buffer size. A trailing partial word slot, if any, is unreachable by
// word access.
func Load(name string, data []byte) *DiskImage {

	d := &DiskImage{name: name, data: data, geometry: Detect(len(data))}

	if d.geometry != nil {
		log.WithFields(log.Fields{
			"name":     name,
			"geometry": d.geometry.Name,
			"bytes":    len(data),
		}).Debug("image loaded")
	} else {
		log.WithFields(log.Fields{
			"name":  name,
			"bytes": len(data),
		}).Debug("image loaded, size matches no cataloged drive")
	}

	return d
}

// NewBlank allocates a zero-filled image at the exact nominal size of the
// named drive model. The image counts as modified from the start, since
// its content does not exist anywhere else yet.
func NewBlank(model string) (*DiskImage, error) {

	g, err := Lookup(model)
	if err != nil {
		return nil, err
	}

	return &DiskImage{
		name:     model,
		data:     make([]byte, g.TotalBytes()),
		geometry: g,
		modified: true,
	}, nil
}

//
func (d *DiskImage) Name() string {
	return d.name
}

//
func (d *DiskImage) SetName(n string) {
	d.name = n
}

// Geometry returns the detected geometry, nil when the image size matched
// no cataloged drive.
func (d *DiskImage) Geometry() *Geometry {
	return d.geometry
}

//
func (d *DiskImage) IsModified() bool {
	return d.modified
}

//
func (d *DiskImage) SetModified(m bool) {
	d.modified = m
}

// Bytes returns the backing buffer. This is the download path: the buffer
// reflects every applied write, with no flush step.
func (d *DiskImage) Bytes() []byte {
	return d.data
}

// TotalWords is the word capacity of the raw buffer. This intentionally
// uses the buffer length, not the detected geometry, so images whose size
// only approximates a drive model remain fully addressable.
func (d *DiskImage) TotalWords() int {
	return len(d.data) / pdp10.BytesPerWord
}

// TotalSectors is the sector capacity of the raw buffer.
func (d *DiskImage) TotalSectors() int {
	return len(d.data) / (d.WordsPerSector() * pdp10.BytesPerWord)
}

// WordsPerSector returns the sector width of the image's geometry, falling
// back to the catalog-wide default when no geometry was detected.
func (d *DiskImage) WordsPerSector() int {
	if d.geometry != nil {
		return d.geometry.WordsPerSector
	}
	return DefaultWordsPerSector
}

// GetWord decodes the word at the given word index.
func (d *DiskImage) GetWord(ix int) (pdp10.Word, error) {
	off, err := d.wordOffset(ix)
	if err != nil {
		return 0, err
	}
	return pdp10.DecodeWord(d.data[off:]), nil
}

// SetWord encodes w into the slot at the given word index and marks the
// image modified. The bounds check happens before anything is written.
func (d *DiskImage) SetWord(ix int, w pdp10.Word) error {
	off, err := d.wordOffset(ix)
	if err != nil {
		return err
	}
	w.Put(d.data[off:])
	d.modified = true
	return nil
}

// GetSector reads the full run of words of one sector.
func (d *DiskImage) GetSector(sector int) ([]pdp10.Word, error) {

	wps := d.WordsPerSector()
	ret := make([]pdp10.Word, wps)

	for ix := 0; ix < wps; ix++ {
		w, err := d.GetWord(sector*wps + ix)
		if err != nil {
			return nil, err
		}
		ret[ix] = w
	}

	return ret, nil
}

// SetSector overwrites one sector. words must hold exactly one sector's
// worth of words, per the image's sector width.
func (d *DiskImage) SetSector(sector int, words []pdp10.Word) error {

	wps := d.WordsPerSector()
	if len(words) != wps {
		return fmt.Errorf("%w: got %d words, sector holds %d",
			ErrLengthMismatch, len(words), wps)
	}

	for ix, w := range words {
		if err := d.SetWord(sector*wps+ix, w); err != nil {
			return err
		}
	}

	return nil
}

// GetWords reads up to count words starting at start, truncating at the
// end of the buffer instead of failing. This backs scrolling views that
// need to render a partial final page.
func (d *DiskImage) GetWords(start, count int) []pdp10.Word {

	if start < 0 || start >= d.TotalWords() || count <= 0 {
		return nil
	}

	if end := d.TotalWords(); start+count > end {
		count = end - start
	}

	ret := make([]pdp10.Word, count)
	for ix := 0; ix < count; ix++ {
		ret[ix] = pdp10.DecodeWord(d.data[(start+ix)*pdp10.BytesPerWord:])
	}

	return ret
}

// SearchWords scans for the first occurrence of pattern at or after start
// and returns its word index, or -1 when the pattern does not occur. Plain
// linear scan; disk images are small enough that nothing cleverer is
// needed.
func (d *DiskImage) SearchWords(pattern []pdp10.Word, start int) int {

	if len(pattern) == 0 {
		return -1
	}

	if start < 0 {
		start = 0
	}

	for ix := start; ix <= d.TotalWords()-len(pattern); ix++ {
		hit := true
		for px, p := range pattern {
			if pdp10.DecodeWord(
				d.data[(ix+px)*pdp10.BytesPerWord:]) != p&pdp10.WordMask {
				hit = false
				break
			}
		}
		if hit {
			return ix
		}
	}

	return -1
}

// WordToSector returns the sector index containing the given word index.
func (d *DiskImage) WordToSector(ix int) int {
	return ix / d.WordsPerSector()
}

// WordToByte returns the byte offset of the given word index.
func (d *DiskImage) WordToByte(ix int) int {
	return ix * pdp10.BytesPerWord
}

//
func (d *DiskImage) wordOffset(ix int) (int, error) {
	off := ix * pdp10.BytesPerWord
	if ix < 0 || off+pdp10.BytesPerWord > len(d.data) {
		return 0, fmt.Errorf("%w: word %d, image holds %d words",
			ErrOutOfBounds, ix, d.TotalWords())
	}
	return off, nil
}
