package fsys

import (
	"io/fs"
	"path"
	"strings"

	"github.com/gopatchy/hue/internal/format"
)

// FS wraps an fs.FS so callers can use rooted paths ("/a/b") as well as
// fs-relative ones.
type FS struct {
	fsys fs.FS
}

func New(fsys fs.FS) *FS {
	return &FS{
		fsys: fsys,
	}
}

func (f *FS) Open(name string) (fs.File, error) {
	return f.fsys.Open(f.convertToFS(name))
}

func (f *FS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, f.convertToFS(name))
}

func (f *FS) stat(name string) (fs.FileInfo, error) {
	sf, ok := f.fsys.(fs.StatFS)
	if ok {
		return sf.Stat(f.convertToFS(name))
	}

	// Fallback: use Open and get FileInfo from the file
	file, err := f.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return file.Stat()
}

func (f *FS) convertToFS(p string) string {
	result := strings.TrimPrefix(path.Clean("/"+p), "/")
	if result == "" {
		return "."
	}
	return result
}

// FindFile returns the first "<dir>/<base>.<ext>" that exists as a regular
// file, trying rule file extensions in lookup order, or "".
func (f *FS) FindFile(dir, base string) string {
	for _, ext := range format.Extensions() {
		p := path.Join(dir, base+"."+ext)

		info, err := f.stat(p)
		if err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
