// Package storage is a path-addressed blob store on local disk. It never
// interprets content; callers keep the returned path in their own records.
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrAlreadyExists = errors.New("blob already exists")
	ErrNotFound      = errors.New("blob not found")
)

type Disk struct{ Root string }

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Disk{Root: root}, nil
}

// Put stores the bytes under name and returns the path. A second Put with
// the same name fails with ErrAlreadyExists.
func (d *Disk) Put(name string, r io.Reader) (string, error) {
	path := filepath.Join(d.Root, filepath.Base(name))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", ErrAlreadyExists
		}
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (d *Disk) Get(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Remove deletes a stored blob, used to undo a Put when the surrounding
// transaction rolls back.
func (d *Disk) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
