package cbzview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestFileServer(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>pages</html>"), 0o644))
	is.NoErr(os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("jpeg bytes"), 0o644))

	server := httptest.NewServer(fileServer(dir, false))
	defer server.Close()

	resp, err := http.Get(server.URL + "/index.html")
	is.NoErr(err)
	defer resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusOK)
	body, err := io.ReadAll(resp.Body)
	is.NoErr(err)
	is.Equal(string(body), "<html>pages</html>")

	resp, err = http.Get(server.URL + "/a.jpg")
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestFileServerNotFound(t *testing.T) {
	is := is.New(t)
	server := httptest.NewServer(fileServer(t.TempDir(), false))
	defer server.Close()

	resp, err := http.Get(server.URL + "/missing.png")
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusNotFound)
}
