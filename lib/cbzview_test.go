package cbzview

import (
	"archive/zip"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func writeArchive(t *testing.T, path string, names ...string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	for _, name := range names {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := entry.Write([]byte("content of " + name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestServe(t *testing.T) {
	is := is.New(t)
	archive := filepath.Join(t.TempDir(), "a.cbz")
	writeArchive(t, archive, "b.png", "a.jpg", "notes.txt")

	shutdown := make(chan struct{})
	linkChan := make(chan url.URL, 1)
	errChan := make(chan error, 1)
	go func() {
		errChan <- Serve(Parameters{
			Path:        archive,
			Shutdown:    shutdown,
			GracePeriod: time.Second,
		}, linkChan)
	}()

	var link url.URL
	select {
	case link = <-linkChan:
	case err := <-errChan:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for server link")
	}
	is.True(strings.HasPrefix(link.Host, "localhost:"))
	is.Equal(link.Path, "/index.html")

	resp, err := http.Get(link.String())
	is.NoErr(err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	is.NoErr(err)
	is.Equal(resp.StatusCode, http.StatusOK)
	page := string(body)
	first := strings.Index(page, `<img src="a.jpg"`)
	second := strings.Index(page, `<img src="b.png"`)
	is.True(first >= 0)
	is.True(second > first)
	is.True(!strings.Contains(page, "notes.txt"))

	// Non-image entries are extracted and served, just not indexed.
	resp, err = http.Get(link.Scheme + "://" + link.Host + "/notes.txt")
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusOK)

	close(shutdown)
	select {
	case err := <-errChan:
		is.NoErr(err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop within the grace period")
	}
}

func TestServeMissingFile(t *testing.T) {
	is := is.New(t)
	err := Serve(Parameters{Path: filepath.Join(t.TempDir(), "nope.cbz")}, nil)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "does not exist"))
}

func TestServeInvalidZip(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "not-a.cbz")
	is.NoErr(os.WriteFile(path, []byte("plain text, no zip here"), 0o644))

	err := Serve(Parameters{Path: path}, nil)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "not a valid zip file"))
}
