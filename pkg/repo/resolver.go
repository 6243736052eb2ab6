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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// PrefixRepoRef marks an image reference that the daemon resolves against
// its repository folder, instead of receiving the image bytes uploaded.
const PrefixRepoRef = "repo://"

//
func newFileSource(file string) (*fileSource, error) {
	if f, err := os.Open(file); err != nil {
		return nil, err
	} else {
		return &fileSource{file: f, reader: bufio.NewReader(f)}, nil
	}
}

//
type fileSource struct {
	file   *os.File
	reader io.Reader
}

//
func (fs *fileSource) Read(p []byte) (n int, err error) {
	return fs.reader.Read(p)
}

//
func (fs *fileSource) Close() error {
	return fs.file.Close()
}

// Resolve opens a disk image referenced as repo://{path}, relative to the
// daemon's image repository base folder. Only repo:// references are
// accepted. They are refused when no repository is configured, and when
// the path would escape the base folder.
func Resolve(ref, repo string) (io.ReadCloser, error) {

	log.WithFields(log.Fields{
		"reference":  ref,
		"repository": repo,
	}).Debug("resolving ref")

	if !strings.HasPrefix(ref, PrefixRepoRef) {
		return nil, fmt.Errorf("unsupported image reference: %s", ref)
	}

	if repo == "" {
		return nil, fmt.Errorf("image repository is not enabled")
	}

	path := filepath.Join(repo, ref[len(PrefixRepoRef):])
	if !strings.HasPrefix(path,
		filepath.Clean(repo)+string(os.PathSeparator)) {
		return nil, fmt.Errorf("image reference escapes repository: %s", ref)
	}

	return newFileSource(path)
}

//
func IsReference(r string) bool {
	return strings.HasPrefix(r, PrefixRepoRef)
}
