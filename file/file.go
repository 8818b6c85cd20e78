package file

import (
	"io"
	"os"
)

type File struct {
	file *os.File
}

func New(path string, flag int) (*File, error) {
	file, err := os.OpenFile(path, flag, os.FileMode(0766))
	return &File{
		file: file,
	}, err
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *File) Name() string {
	return f.file.Name()
}

func (f *File) Read(bytes []byte) (int, error) {
	return f.file.Read(bytes)
}

func (f *File) Write(bytes []byte) (int, error) {
	return f.file.Write(bytes)
}

func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *File) ReadAll() ([]byte, error) {
	return io.ReadAll(f.file)
}

func (f *File) Size() int64 {
	info, err := f.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

func (f *File) Close() error {
	return f.file.Close()
}

func (f *File) Delete() error {
	_ = f.file.Close()
	return os.Remove(f.file.Name())
}
