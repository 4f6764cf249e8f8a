// index.go - generate the image index page.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of cbzview, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package cbzview

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

//go:embed index.html.tmpl
var indexTemplate string

const imagesToken = "{{ images }}"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".avif": true,
}

// listImages returns the names of image files directly under dir,
// in ascending lexicographic order.
func listImages(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, entry.Name())
		}
	}
	sort.Strings(images)
	return images, nil
}

// writeIndex renders the embedded template with one <img> element per
// image under dir and writes it to dir/index.html. Filenames are
// substituted verbatim: they come from a local archive the user chose,
// so no HTML escaping is applied.
func writeIndex(fs afero.Fs, dir string) error {
	images, err := listImages(fs, dir)
	if err != nil {
		return err
	}
	tags := make([]string, len(images))
	for i, image := range images {
		tags[i] = fmt.Sprintf(`<img src="%s" alt="%s"><br>`, image, image)
	}
	content := strings.Replace(indexTemplate, imagesToken, strings.Join(tags, "\n"), 1)
	return afero.WriteFile(fs, filepath.Join(dir, "index.html"), []byte(content), 0o644)
}
