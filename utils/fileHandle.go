package utils

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StagedFile is an uploaded file written to the upload directory but
// not yet referenced by any database row.
type StagedFile struct {
	Path string // stored path persisted in *_path columns
	Name string // basename persisted in file-name columns
}

// Discard removes the staged file. Called when a later step of the
// request fails so the upload does not outlive the aborted request.
func (s *StagedFile) Discard() {
	if s == nil || s.Path == "" {
		return
	}
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to discard staged upload %s: %v", s.Path, err)
	}
}

// StageUpload looks for a file under any of the given form keys (first
// match wins) and saves it under destDir with a collision-resistant
// name. Returns nil when none of the keys carries a file.
func StageUpload(form *multipart.Form, keys []string, destDir string) (*StagedFile, error) {
	for _, key := range keys {
		files := form.File[key]
		if len(files) == 0 {
			continue
		}
		path, err := SaveUploadedFile(files[0], destDir)
		if err != nil {
			return nil, err
		}
		return &StagedFile{Path: path, Name: filepath.Base(path)}, nil
	}
	return nil, nil
}

// SaveUploadedFile writes the uploaded file into destDir as
// <uuid>_<original name> and returns the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	newFilename := uuid.New().String() + "_" + filepath.Base(file.Filename)
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}
