// Package localfs exposes the lines of local text files as rangekit ranges.
package localfs

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/multirange/pkg/rangekit"
)

const ErrNotRegularFile errorkit.Error = "ErrNotRegularFile"

// FileSystem opens line indexed files from the local file system.
type FileSystem struct {
	// RootPath is an optional parameter to jail the file system access for file access.
	RootPath string
}

func (fs FileSystem) path(name, op string) (string, error) {
	if fs.RootPath == "" {
		return name, nil
	}

	root, err := filepath.Abs(fs.RootPath)
	if err != nil {
		return "", err
	}

	path, err := filepath.Abs(filepath.Join(root, name))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &os.PathError{
			Op:   op,
			Path: name,
			Err:  syscall.EACCES,
		}
	}

	return path, nil
}

// Open opens the named file, and indexes where its lines start.
// The file content is read on demand, when a position is dereferenced.
func (fs FileSystem) Open(name string) (_ *File, returnErr error) {
	path, err := fs.path(name, "open")
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if returnErr != nil {
			returnErr = errorkit.Merge(returnErr, f.Close())
		}
	}()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotRegularFile.F("%s", name)
	}
	offsets, err := indexLines(f)
	if err != nil {
		return nil, err
	}
	return &File{name: name, src: f, offsets: offsets}, nil
}

// indexLines returns the start offset of every line,
// followed by the offset of the end of the content.
func indexLines(r io.Reader) ([]int64, error) {
	var (
		br      = bufio.NewReader(r)
		offsets = []int64{0}
		offset  int64
	)
	for {
		line, err := br.ReadSlice('\n')
		offset += int64(len(line))
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF {
			if 0 < len(line) {
				offsets = append(offsets, offset)
			}
			return offsets, nil
		}
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, offset)
	}
}

// File is an open text file with indexed lines.
type File struct {
	name    string
	src     io.ReaderAt
	offsets []int64
	err     error
}

func (f *File) Name() string { return f.name }

// Len returns the number of lines.
func (f *File) Len() int { return len(f.offsets) - 1 }

// Range returns the range of the file's lines, without their line terminators.
func (f *File) Range() rangekit.Range[LinePosition, string] {
	return rangekit.Range[LinePosition, string]{
		From: LinePosition{file: f, line: 0},
		To:   LinePosition{file: f, line: f.Len()},
	}
}

// Err returns the first error that occurred while reading a line.
func (f *File) Err() error { return f.err }

func (f *File) Close() error {
	if c, ok := f.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (f *File) read(line int) string {
	var (
		start = f.offsets[line]
		buf   = make([]byte, f.offsets[line+1]-start)
	)
	if _, err := f.src.ReadAt(buf, start); err != nil && err != io.EOF {
		if f.err == nil {
			f.err = err
		}
		return ""
	}
	buf = bytes.TrimSuffix(buf, []byte("\n"))
	buf = bytes.TrimSuffix(buf, []byte("\r"))
	return string(buf)
}

// LinePosition is the position of a line in a File.
type LinePosition struct {
	file *File
	line int
}

func (p LinePosition) Equal(o LinePosition) bool {
	return p.file == o.file && p.line == o.line
}

func (p LinePosition) Next() LinePosition {
	return LinePosition{file: p.file, line: p.line + 1}
}

// Get reads the line at the position.
// Read errors yield an empty line, and are reported by File.Err.
func (p LinePosition) Get() *string {
	v := p.file.read(p.line)
	return &v
}

// Line is the zero based line number of the position.
func (p LinePosition) Line() int { return p.line }
