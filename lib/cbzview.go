// cbzview.go - extract and serve comic book archives.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of cbzview, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package cbzview

import (
	"archive/zip"
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/afero"
)

// DefaultGracePeriod bounds how long Serve waits for in-flight
// responses after shutdown is requested.
const DefaultGracePeriod = 2 * time.Second

type Parameters struct {
	// Path to the cbz/zip archive to serve.
	Path string
	// Port to bind, 0 for an ephemeral one.
	Port int
	// Shutdown, when closed, stops the server gracefully.
	Shutdown <-chan struct{}
	// GracePeriod overrides DefaultGracePeriod when positive.
	GracePeriod time.Duration
	Debug       bool
}

// Serve extracts the archive from p.Path into a fresh temporary
// directory, writes an index page for its images and serves the
// directory over HTTP until p.Shutdown is closed. The page URL is
// sent to linkChan once the listener is bound.
func Serve(p Parameters, linkChan chan<- url.URL) error {
	if _, err := os.Stat(p.Path); err != nil {
		return fmt.Errorf("file %q does not exist", p.Path)
	}
	rcZip, err := zip.OpenReader(p.Path)
	if err != nil {
		return fmt.Errorf("file %q is not a valid zip file", p.Path)
	}
	defer rcZip.Close()

	tmpDir, err := os.MkdirTemp("", "cbzview-")
	if err != nil {
		return fmt.Errorf("unable to create temporary directory: %v", err)
	}
	// Removal is best-effort: a client may still hold a file open.
	defer os.RemoveAll(tmpDir)

	fmt.Printf("Extracting %s to %s\n", p.Path, tmpDir)
	fs := afero.NewOsFs()
	if err := extract(&rcZip.Reader, fs, tmpDir); err != nil {
		return fmt.Errorf("unable to extract archive: %v", err)
	}
	if err := writeIndex(fs, tmpDir); err != nil {
		return fmt.Errorf("unable to create index page: %v", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", p.Port))
	if err != nil {
		return fmt.Errorf("unable to bind listener: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	server := &http.Server{Handler: fileServer(tmpDir, p.Debug)}
	go func() {
		<-p.Shutdown
		grace := p.GracePeriod
		if grace <= 0 {
			grace = DefaultGracePeriod
		}
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			if p.Debug {
				log.Printf("Graceful shutdown failed: %v", err)
			}
			server.Close()
		}
	}()

	link := url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("localhost:%d", port),
		Path:   "/index.html",
	}
	linkChan <- link

	err = server.Serve(listener)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("cannot serve HTTP: %v", err)
	}
	return nil
}
