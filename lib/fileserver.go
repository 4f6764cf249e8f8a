// fileserver.go - serve the extracted directory over HTTP.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of cbzview, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package cbzview

import (
	"log"
	"net/http"

	"golang.org/x/tools/godoc/vfs"
	"golang.org/x/tools/godoc/vfs/httpfs"
)

// fileServer returns a handler serving the tree rooted at root. The
// root is passed explicitly so the process working directory stays
// untouched.
func fileServer(root string, debug bool) http.Handler {
	fs := vfs.OS(root)
	fileserver := http.FileServer(httpfs.New(fs))
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		if debug {
			log.Printf("Request for \"%s\"", req.URL)
		}
		fileserver.ServeHTTP(w, req)
	})
	return mux
}
