package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type UploadedObject struct {
	Folder  string
	Name    string
	Content []byte
}

type DeletedObject struct {
	Folder string
	Name   string
}

type FakeObjectStorage struct {
	Uploaded    []UploadedObject
	Deleted     []DeletedObject
	URL         string
	UploadError bool
	DeleteError bool
	lock        sync.Mutex
}

func NewFakeObjectStorage(url string) *FakeObjectStorage {
	return &FakeObjectStorage{URL: url}
}

func (s *FakeObjectStorage) Upload(
	ctx context.Context,
	content io.Reader,
	folder string,
	name string,
) (string, error) {
	if s.UploadError {
		return "", fmt.Errorf("could not upload object %s/%s", folder, name)
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Uploaded = append(s.Uploaded, UploadedObject{Folder: folder, Name: name, Content: data})
	return s.URL, nil
}

func (s *FakeObjectStorage) Delete(ctx context.Context, folder string, name string) error {
	if s.DeleteError {
		return fmt.Errorf("could not delete object %s/%s", folder, name)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Deleted = append(s.Deleted, DeletedObject{Folder: folder, Name: name})
	return nil
}

func (s *FakeObjectStorage) UploadedCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Uploaded)
}

func (s *FakeObjectStorage) DeletedCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Deleted)
}
