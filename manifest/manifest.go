package manifest

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/benchkit/tpcds-pipeline/file"
)

// Manifest is a checkpoint file recording the last table whose load job
// completed, so an interrupted run can resume without re-loading tables.
type Manifest struct {
	file *file.File
}

func New(path string) (*Manifest, error) {
	f, err := file.New(path, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return nil, err
	}
	return &Manifest{file: f}, nil
}

// Mark records that the table at index idx finished loading.
func (m *Manifest) Mark(idx int, table string) error {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(idx))
	buf := bytes.Buffer{}
	buf.Write(data)
	buf.WriteString(table)
	if err := m.file.Truncate(0); err != nil {
		return err
	}
	if _, err := m.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := m.file.Write(buf.Bytes())
	return err
}

// Last returns the index and name of the last loaded table, or -1 and an
// empty name when nothing has been recorded yet.
func (m *Manifest) Last() (int, string, error) {
	if _, err := m.file.Seek(0, io.SeekStart); err != nil {
		return -1, "", err
	}
	bs, err := m.file.ReadAll()
	if err != nil {
		if err == io.EOF {
			return -1, "", nil
		}
		return -1, "", err
	}
	if len(bs) < 4 {
		return -1, "", nil
	}
	return int(binary.BigEndian.Uint32(bs[:4])), string(bs[4:]), nil
}

// Reset discards any recorded progress.
func (m *Manifest) Reset() error {
	return m.file.Truncate(0)
}

// Delete removes the checkpoint file.
func (m *Manifest) Delete() error {
	return m.file.Delete()
}
