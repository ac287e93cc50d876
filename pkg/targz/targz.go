package targz

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type Visitor interface {
	VisitDirectory(info fs.FileInfo, name string) error
	VisitFile(info fs.FileInfo, name string) (io.WriteCloser, error)
}

// Archive writes the given regular files into a gzipped tarball, each under
// its base name.
func Archive(output io.Writer, paths ...string) error {
	gzipWriter := gzip.NewWriter(output)
	tarWriter := tar.NewWriter(gzipWriter)

	for _, path := range paths {
		if err := addFile(tarWriter, path); err != nil {
			return err
		}
	}

	if err := tarWriter.Close(); err != nil {
		return errors.Wrap(err, "Failed to finish tar stream")
	}
	return errors.Wrap(gzipWriter.Close(), "Failed to finish gzip stream")
}

func addFile(tarWriter *tar.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to open %s", path)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.Wrapf(err, "Failed to stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("Not a regular file: %s", path)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return errors.Wrapf(err, "Failed to build header for %s", path)
	}
	header.Name = filepath.Base(path)

	if err := tarWriter.WriteHeader(header); err != nil {
		return errors.Wrapf(err, "Failed to write header for %s", path)
	}
	written, err := io.Copy(tarWriter, file)
	if err != nil {
		return errors.Wrapf(err, "Failed to archive %s", path)
	}
	if written != header.Size {
		return errors.Errorf("File %s changed while archiving", path)
	}
	return nil
}

func Extract(input io.Reader, visitor Visitor) error {
	gzipReader, err := gzip.NewReader(input)
	if err != nil {
		return errors.Wrap(err, "Failed to open gzip stream")
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "Failed to read tar stream")
		}

		info := header.FileInfo()
		if info.IsDir() {
			err = visitor.VisitDirectory(info, header.Name)
			if err != nil {
				return err
			}
			continue
		}

		writer, err := visitor.VisitFile(info, header.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(writer, tarReader); err != nil {
			writer.Close()
			return errors.Wrapf(err, "Failed to extract %s", header.Name)
		}
		if err := writer.Close(); err != nil {
			return errors.Wrapf(err, "Failed to close %s", header.Name)
		}
	}

	return nil
}

type fsVisitor struct {
	root string
}

func (v *fsVisitor) path(name string) (string, error) {
	path := filepath.Join(v.root, name)
	rel, err := filepath.Rel(v.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("Archive entry escapes target directory: %s", name)
	}
	return path, nil
}

func (v *fsVisitor) VisitDirectory(info fs.FileInfo, name string) error {
	path, err := v.path(name)
	if err != nil {
		return err
	}
	return os.MkdirAll(path, info.Mode().Perm()|0o700)
}

// VisitFile never overwrites existing files.
func (v *fsVisitor) VisitFile(info fs.FileInfo, name string) (io.WriteCloser, error) {
	path, err := v.path(name)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create %s", path)
	}
	return file, nil
}

func ExtractToDir(input io.Reader, path string) error {
	err := os.MkdirAll(path, 0o755)
	if err != nil {
		return err
	}

	return Extract(input, &fsVisitor{root: filepath.Clean(path)})
}
