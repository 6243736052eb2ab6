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
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/averbach/dskten/pkg/daemon"
)

//
type APIServer interface {
	Serve() error
	Stop() error
}

// NewAPIServer creates the API server. repository is the base folder for
// resolving repo:// image references; when empty, loading images from the
// daemon host's file system is prohibited.
func NewAPIServer(addr, repository string, d *daemon.Daemon) APIServer {
	return &api{address: addr, repository: repository, daemon: d}
}

//
type api struct {
	address    string
	repository string
	daemon     *daemon.Daemon
	server     *http.Server
}

//
func (a *api) Serve() error {

	router := mux.NewRouter().StrictSlash(true)

	addRoute(router, "status", "GET", "/status", a.status)
	addRoute(router, "ls", "GET", "/list", a.list)
	addRoute(router, "load", "PUT", "/drive/{drive:[1-8]}", a.load)
	addRoute(router, "blank", "POST", "/drive/{drive:[1-8]}/blank", a.blank)
	addRoute(router, "save", "GET", "/drive/{drive:[1-8]}", a.save)
	addRoute(router, "unload", "GET", "/drive/{drive:[1-8]}/unload", a.unload)
	addRoute(router, "info", "GET", "/drive/{drive:[1-8]}/info", a.info)
	addRoute(router, "dump", "GET", "/drive/{drive:[1-8]}/dump", a.dump)
	addRoute(router, "getword", "GET",
		"/drive/{drive:[1-8]}/word/{index:[0-9]+}", a.getWord)
	addRoute(router, "setword", "PUT",
		"/drive/{drive:[1-8]}/word/{index:[0-9]+}", a.setWord)
	addRoute(router, "words", "GET", "/drive/{drive:[1-8]}/words", a.words)
	addRoute(router, "sector", "GET",
		"/drive/{drive:[1-8]}/sector/{sector:[0-9]+}", a.sector)
	addRoute(router, "search", "GET", "/drive/{drive:[1-8]}/search", a.search)

	addr := a.address
	if len(strings.Split(addr, ":")) < 2 {
		addr = fmt.Sprintf("%s:8590", a.address)
	}

	log.Infof("DskTen API starts listening on %s", addr)
	a.server = &http.Server{Addr: addr, Handler: router}

	err := a.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

//
func (a *api) Stop() error {
	if a.server != nil {
		log.Info("API server stopping...")
		err := a.server.Shutdown(context.Background())
		a.server = nil
		return err
	}
	return nil
}

//
func addRoute(r *mux.Router, name, method, pattern string,
	handler http.HandlerFunc) {
	r.Methods(method).
		Path(pattern).
		Name(name).
		Handler(requestLogger(handler, name))
}

//
func requestLogger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		log.WithFields(log.Fields{
			"remote": r.RemoteAddr,
			"method": r.Method,
			"path":   r.RequestURI,
		}).Debugf("API BEGIN | %s", name)

		start := time.Now()
		inner.ServeHTTP(w, r)

		log.WithFields(log.Fields{
			"remote":   r.RemoteAddr,
			"method":   r.Method,
			"path":     r.RequestURI,
			"duration": time.Since(start),
		}).Debugf("API END   | %s", name)
	})
}

//
func (a *api) status(w http.ResponseWriter, req *http.Request) {

	stat := &Status{}
	for drive := 1; drive <= daemon.DriveCount; drive++ {
		stat.Add(a.daemon.GetStatus(drive))
	}

	if wantsJSON(req) {
		sendJSONReply(stat, http.StatusOK, w)
	} else {
		sendReply([]byte(stat.String()), http.StatusOK, w)
	}
}

//
func (a *api) list(w http.ResponseWriter, req *http.Request) {

	list := a.getDriveList()

	if wantsJSON(req) {
		sendJSONReply(list, http.StatusOK, w)

	} else {
		strList := "\nDRIVE IMAGE            GEOMETRY"
		for ix, d := range list {
			strList += fmt.Sprintf("\n  %d   %s", ix+1, d.String())
		}
		sendReply([]byte(strList), http.StatusOK, w)
	}
}

//
func (a *api) getDriveList() []*Image {

	ret := make([]*Image, daemon.DriveCount)

	for drive := 1; drive <= daemon.DriveCount; drive++ {

		d := &Image{Status: a.daemon.GetStatus(drive)}

		if d.Status == daemon.StatusIdle {
			if img, ok := a.daemon.GetImage(drive); img != nil {
				d.fill(img)
				a.daemon.UnlockDrive(drive)
			} else if !ok {
				d.Status = daemon.StatusBusy
			}
		}

		ret[drive-1] = d
	}

	return ret
}
