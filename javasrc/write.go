package javasrc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteCompilationUnit writes the source of cu to w, followed by a newline.
func WriteCompilationUnit(w io.Writer, cu *CompilationUnit) error {
	var buf bytes.Buffer
	if err := NewPrinter(&buf).PrintCompilationUnit(cu); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteCompilationUnits writes each unit to the writer outFn returns for the
// unit's path. All units are rendered before outFn is first called, so a
// failing unit leaves every output untouched. Writers that implement
// io.Closer are closed after use.
func WriteCompilationUnits(outFn func(path string) (io.Writer, error), units ...*CompilationUnit) error {
	sources := make([][]byte, len(units))
	for i, cu := range units {
		var buf bytes.Buffer
		if err := WriteCompilationUnit(&buf, cu); err != nil {
			return fmt.Errorf("%s: %w", cu.Path(), err)
		}
		sources[i] = buf.Bytes()
	}

	for i, cu := range units {
		w, err := outFn(cu.Path())
		if err != nil {
			return err
		}
		_, err = w.Write(sources[i])
		if c, ok := w.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCompilationUnitsToFileSystem writes each unit below rootDir, creating
// package directories as needed.
func WriteCompilationUnitsToFileSystem(rootDir string, units ...*CompilationUnit) error {
	return WriteCompilationUnits(func(path string) (io.Writer, error) {
		fullPath := filepath.Join(rootDir, filepath.FromSlash(path))
		dir := filepath.Dir(fullPath)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		return os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	}, units...)
}
