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
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/averbach/dskten/pkg/pdp10"
)

//
func (a *api) getWord(w http.ResponseWriter, req *http.Request) {

	drive, img := a.lockedImage(w, req)
	if img == nil {
		return
	}
	defer a.daemon.UnlockDrive(drive)

	index := getPathInt(w, req, "index")
	if index == -1 {
		return
	}

	word, err := img.GetWord(index)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	mode, err := getArg(req, "format")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	if mode == "" {
		wv := &WordView{Index: index}
		wv.fill(word)
		if wantsJSON(req) {
			sendJSONReply(wv, http.StatusOK, w)
		} else {
			sendReply([]byte(wv.String()), http.StatusOK, w)
		}
		return
	}

	format, err := pdp10.NewFormatter(mode)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	sendReply([]byte(format(word)), http.StatusOK, w)
}

// setWord parses the submitted text in the requested display mode and
// overwrites one word. A parse failure leaves the word untouched.
func (a *api) setWord(w http.ResponseWriter, req *http.Request) {

	drive, img := a.lockedImage(w, req)
	if img == nil {
		return
	}
	defer a.daemon.UnlockDrive(drive)

	index := getPathInt(w, req, "index")
	if index == -1 {
		return
	}

	value, err := getArg(req, "value")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	mode, err := getArg(req, "format")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	if mode == "" {
		mode = "octal"
	}

	word, err := pdp10.ParseWord(value, mode)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	if handleError(
		img.SetWord(index, word), http.StatusUnprocessableEntity, w) {
		return
	}

	sendReply([]byte(fmt.Sprintf(
		"drive %d word %d set to %s", drive, index, word.SplitOctal())),
		http.StatusOK, w)
}

// words serves a bounded range read. The result may be shorter than
// requested at the end of the image; scrolling clients rely on that.
func (a *api) words(w http.ResponseWriter, req *http.Request) {

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

	mode, err := getArg(req, "format")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	if mode == "" {
		mode = "split-octal"
	}

	format, err := pdp10.NewFormatter(mode)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	words := img.GetWords(start, count)

	if wantsJSON(req) {
		list := make([]string, len(words))
		for ix, word := range words {
			list[ix] = format(word)
		}
		sendJSONReply(&WordRange{Start: start, Words: list},
			http.StatusOK, w)
		return
	}

	var buf bytes.Buffer
	for ix, word := range words {
		fmt.Fprintf(&buf, "%08o  %s\n", start+ix, format(word))
	}
	sendReply(buf.Bytes(), http.StatusOK, w)
}

//
func (a *api) sector(w http.ResponseWriter, req *http.Request) {

	drive, img := a.lockedImage(w, req)
	if img == nil {
		return
	}
	defer a.daemon.UnlockDrive(drive)

	sector := getPathInt(w, req, "sector")
	if sector == -1 {
		return
	}

	var buf bytes.Buffer
	if handleError(
		img.EmitSector(&buf, sector), http.StatusUnprocessableEntity, w) {
		return
	}

	sendReply(buf.Bytes(), http.StatusOK, w)
}

// search scans for a word pattern given as whitespace-separated octal
// words and replies with the index of the first match.
func (a *api) search(w http.ResponseWriter, req *http.Request) {

	drive, img := a.lockedImage(w, req)
	if img == nil {
		return
	}
	defer a.daemon.UnlockDrive(drive)

	arg, err := getArg(req, "pattern")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	pattern, err := parsePattern(arg)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	start, err := getIntArg(req, "start", 0)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	found := img.SearchWords(pattern, start)

	if wantsJSON(req) {
		sendJSONReply(&SearchResult{Index: found, Found: found >= 0},
			http.StatusOK, w)
		return
	}

	if found < 0 {
		sendReply([]byte("not found"), http.StatusOK, w)
	} else {
		sendReply([]byte(fmt.Sprintf("found at word %d", found)),
			http.StatusOK, w)
	}
}

// parsePattern splits a pattern into whitespace-separated octal words;
// each word may use the split (comma) or full octal form.
func parsePattern(arg string) ([]pdp10.Word, error) {

	fields := strings.Fields(arg)

	if len(fields) == 0 {
		return nil, fmt.Errorf("empty search pattern")
	}

	ret := make([]pdp10.Word, len(fields))
	for ix, f := range fields {
		w, err := pdp10.ParseOctal(f)
		if err != nil {
			return nil, err
		}
		ret[ix] = w
	}

	return ret, nil
}
