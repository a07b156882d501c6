package main

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"
)

// openScript opens a calculation script for reading.
func openScript(fs billy.Filesystem, name string) (billy.File, error) {
	return fs.Open(name)
}

// createTranscript creates the transcript file for one session inside dir.
func createTranscript(fs billy.Filesystem, dir string, id uuid.UUID) (billy.File, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return fs.Create(fs.Join(dir, fmt.Sprintf("calc-%s.log", id)))
}
