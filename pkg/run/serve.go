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

package run

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/averbach/dskten/pkg/control"
	"github.com/averbach/dskten/pkg/daemon"
)

//
func NewServe() *Serve {

	s := &Serve{}
	s.Runner = *NewRunner(
		`serve [-a|--address {address}] [-r|--repo {repo base folder}]`,
		"daemon & API server command",
		`Use the serve command for running the drive daemon and API server. The daemon
manages the drive slots into which disk images get mounted; all editing
happens through the API.`,
		s.Run)

	s.AddBaseSettings()
	s.AddStringSetting(&s.Address, "address", "a", "DSKTEN_ADDRESS", "",
		"listen address for API server", false)
	s.AddStringSetting(&s.Repository, "repo", "r", "DSKTEN_REPO", "",
		`image repo base folder; when omitted, loading images
from daemon host's file system is prohibited`, false)

	return s
}

//
type Serve struct {
	//
	Runner
	//
	Address    string
	Repository string
}

//
func (s *Serve) Run() error {

	if err := s.ParseSettings(); err != nil {
		return err
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)

	d := daemon.NewDaemon()

	api := control.NewAPIServer(s.Address, s.Repository, d)
	go func() {
		defer wg.Done()
		if err := api.Serve(); err != nil {
			log.Errorf("API server closed with error: %v", err)
		} else {
			log.Info("API server stopped")
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sigCount := 0
	done := make(chan bool)

	for {

		select {

		case sig := <-sigs: // interrupt signal
			log.WithField("signal", sig).Info("signal received")
			sigCount++

			switch sigCount {

			case 1:
				go func() {
					log.Info("shutting down, hit Ctrl-C twice to force exit...")
					api.Stop()
					wg.Wait()
					log.Info("DskTen stopped")
					done <- true
				}()

			case 2:
				log.Warn("shutdown in progress, hit Ctrl-C again to force exit")

			default:
				log.Warn("forcing daemon to stop immediately")
				os.Exit(1)
			}

		case <-done: // shutdown sequence complete
			return nil
		}
	}
}
