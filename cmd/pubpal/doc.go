// ABOUTME: Document hosts for the interactive session
// ABOUTME: A file-backed host for real source files and an in-memory scratch host

package main

import (
	"os"
	"sync"

	"github.com/pubpal/pubpal/internal/document"
)

// fileDoc serves a source file as the session's document. The selection is
// always empty since there is no editor cursor on the CLI.
type fileDoc struct {
	path string

	mu   sync.Mutex
	text string
}

func newFileDoc(path string) (*fileDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &fileDoc{path: path, text: string(data)}, nil
}

func (d *fileDoc) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

func (d *fileDoc) Selection() document.Range {
	return document.Range{}
}

func (d *fileDoc) SetText(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := os.WriteFile(d.path, []byte(text), 0o644); err != nil {
		return err
	}
	d.text = text
	return nil
}

// memDoc is a scratch document used when no source file was given. Imports
// applied to it last only for the session.
type memDoc struct {
	mu   sync.Mutex
	text string
}

func (d *memDoc) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

func (d *memDoc) Selection() document.Range {
	return document.Range{}
}

func (d *memDoc) SetText(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
	return nil
}
