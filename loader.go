package aml

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LoadTree builds a document from an already parsed element tree and makes
// it the engine's document. On failure the previous document stays loaded.
func (e *Engine) LoadTree(root *Element) error {
	doc, err := BuildDocument(root)
	if err != nil {
		return err
	}
	return e.install(doc)
}

// Load parses an AML document from r.
func (e *Engine) Load(r io.Reader) error {
	root, err := ParseXML(r)
	if err != nil {
		return err
	}
	return e.LoadTree(root)
}

// LoadFile parses the AML document at path. Files ending in .yaml or .yml
// are read as YAML documents.
func (e *Engine) LoadFile(path string) error {
	doc, err := readDocumentFile(path)
	if err != nil {
		return err
	}
	return e.install(doc)
}

// LoadYAML reads a document in the YAML layout from r.
func (e *Engine) LoadYAML(r io.Reader) error {
	doc, err := ReadYAML(r)
	if err != nil {
		return err
	}
	return e.install(doc)
}

// LoadFiles parses several documents concurrently and installs their
// animations as one document, in argument order. Either every file loads or
// the engine keeps its previous document. The parsing goroutines never touch
// the engine; the install happens on the caller's goroutine.
func (e *Engine) LoadFiles(ctx context.Context, paths ...string) error {
	if e.destroyed {
		return ErrDestroyed
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no files", ErrDocumentParse)
	}
	docs := make([]*Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := readDocumentFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return e.install(mergeDocuments(docs))
}

// readDocumentFile parses one file, choosing the front end by extension.
func readDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentParse, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = ReadYAML(r)
	default:
		var root *Element
		if root, err = ParseXML(r); err == nil {
			doc, err = BuildDocument(root)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// mergeDocuments concatenates the animations of docs. Title conflicts
// across files resolve like duplicates within one file.
func mergeDocuments(docs []*Document) *Document {
	if len(docs) == 1 {
		return docs[0]
	}
	var anims []*Animation
	for _, d := range docs {
		anims = append(anims, d.Animations()...)
	}
	return newDocument(anims)
}
