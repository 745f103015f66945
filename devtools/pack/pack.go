// Package pack writes reports into a tar archive.
package pack

import (
	"archive/tar"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/json"
)

// Doc is a single file of the archive.
type Doc struct {
	Name     string // Slash separated path inside the archive
	MimeType string
	Data     []byte
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(regexp.MustCompile("[/+]json$"), json.Minify)
	return m
}

// Pack writes docs to a new tar file. HTML and JSON documents are minified, all others are stored
// as they are.
func Pack(filename string, docs []Doc) error {
	minifier := newMinifier()

	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening file: %v", err)
	}
	defer file.Close()

	tw := tar.NewWriter(file)
	dirs := make(map[string]bool)

	for _, d := range docs {
		mt, _, err := mime.ParseMediaType(d.MimeType)
		if err != nil {
			return fmt.Errorf("invalid mime type of %s: %v", d.Name, err)
		}

		b, err := minifier.Bytes(mt, d.Data)
		switch {
		case errors.Is(err, minify.ErrNotExist):
			b = d.Data
		case err != nil:
			return fmt.Errorf("minification failed for %s: %v", d.Name, err)
		}

		name := strings.TrimPrefix(path.Clean("/"+d.Name), "/")
		if name == "" {
			return fmt.Errorf("invalid document name %q", d.Name)
		}

		if dir := path.Dir(name); !dirs[dir] {
			hdrName := "./" + dir + "/"
			if dir == "." {
				hdrName = "./"
			}
			hdr := &tar.Header{
				Typeflag: tar.TypeDir,
				Name:     hdrName,
				Mode:     int64(0755),
			}
			if err := tw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("writing header: %v", err)
			}
			dirs[dir] = true
		}

		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     "./" + name,
			Mode:     int64(0644),
			Size:     int64(len(b)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing header: %v", err)
		}
		if _, err := tw.Write(b); err != nil {
			return fmt.Errorf("writing body: %v", err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing archive: %v", err)
	}
	return file.Close()
}
