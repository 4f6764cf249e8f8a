// extract.go - unpack archive entries into a directory.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of cbzview, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package cbzview

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// extract unpacks every regular entry of zr under dir, creating
// parent directories as needed. Entry names must stay inside dir.
func extract(zr *zip.Reader, fs afero.Fs, dir string) error {
	for _, file := range zr.File {
		// Directory entries carry no data; pages of a cbz are
		// regular files.
		if file.FileInfo().IsDir() {
			continue
		}
		if err := extractFile(file, fs, dir); err != nil {
			return fmt.Errorf("entry %q: %v", file.Name, err)
		}
	}
	return nil
}

func extractFile(file *zip.File, fs afero.Fs, dir string) error {
	path := filepath.Join(dir, filepath.FromSlash(file.Name))
	if !strings.HasPrefix(path, filepath.Clean(dir)+string(filepath.Separator)) {
		return fmt.Errorf("path escapes extraction directory")
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
