// Package file keeps concepts in a single JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/data/repository"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/utils"
)

type document struct {
	Concepts        []model.Concept `json:"concepts"`
	DeletedConcepts []model.Concept `json:"deletedConcepts"`
}

// File serializes every read-modify-write cycle behind one mutex.
type File struct {
	path string
	mu   sync.Mutex
}

func New(cfg *config.Config) *File {
	return &File{path: cfg.Storage.FilePath}
}

func (f *File) ListConcepts(ctx context.Context) ([]model.Concept, error) {
	doc, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Concepts, nil
}

func (f *File) GetConcept(ctx context.Context, id string) (model.Concept, error) {
	doc, err := f.load(ctx)
	if err != nil {
		return model.Concept{}, err
	}
	idx := indexOf(doc.Concepts, id)
	if idx < 0 {
		return model.Concept{}, repository.ErrNotFound
	}
	return doc.Concepts[idx], nil
}

func (f *File) InsertConcept(ctx context.Context, concept model.Concept) error {
	return f.update(ctx, "File.InsertConcept", func(doc *document) error {
		if indexOf(doc.Concepts, concept.ID) >= 0 || indexOf(doc.DeletedConcepts, concept.ID) >= 0 {
			return repository.ErrAlreadyExists
		}
		doc.Concepts = append(doc.Concepts, concept)
		return nil
	})
}

func (f *File) UpdateConcept(ctx context.Context, id, name string, stocks []model.ConceptStock, at time.Time) (res model.Concept, err error) {
	err = f.update(ctx, "File.UpdateConcept", func(doc *document) error {
		idx := indexOf(doc.Concepts, id)
		if idx < 0 {
			return repository.ErrNotFound
		}
		c := &doc.Concepts[idx]
		if name != "" {
			c.Name = name
		}
		c.Stocks = stocks
		c.UpdatedAt = &at
		res = *c
		return nil
	})
	return res, err
}

func (f *File) SoftDeleteConcept(ctx context.Context, id string, at time.Time) (res model.Concept, err error) {
	err = f.update(ctx, "File.SoftDeleteConcept", func(doc *document) error {
		idx := indexOf(doc.Concepts, id)
		if idx < 0 {
			return repository.ErrNotFound
		}
		res = doc.Concepts[idx]
		res.DeletedAt = &at
		doc.Concepts = slices.Delete(doc.Concepts, idx, idx+1)
		doc.DeletedConcepts = append(doc.DeletedConcepts, res)
		return nil
	})
	return res, err
}

func (f *File) ListDeletedConcepts(ctx context.Context) ([]model.Concept, error) {
	doc, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.DeletedConcepts, nil
}

func (f *File) RestoreConcept(ctx context.Context, id string) (res model.Concept, err error) {
	err = f.update(ctx, "File.RestoreConcept", func(doc *document) error {
		idx := indexOf(doc.DeletedConcepts, id)
		if idx < 0 {
			return repository.ErrNotFound
		}
		res = doc.DeletedConcepts[idx]
		res.DeletedAt = nil
		doc.DeletedConcepts = slices.Delete(doc.DeletedConcepts, idx, idx+1)
		doc.Concepts = append(doc.Concepts, res)
		return nil
	})
	return res, err
}

// PurgeConcept removes a concept from the trash. Unknown ids are ignored.
func (f *File) PurgeConcept(ctx context.Context, id string) error {
	return f.update(ctx, "File.PurgeConcept", func(doc *document) error {
		doc.DeletedConcepts = slices.DeleteFunc(doc.DeletedConcepts, func(c model.Concept) bool {
			return c.ID == id
		})
		return nil
	})
}

func (f *File) load(ctx context.Context) (document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read(ctx)
}

func (f *File) update(ctx context.Context, op string, fn func(doc *document) error) (err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	slog.Debug("update start", slog.String("rqID", rqID), slog.String("op", op))
	defer func() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrAlreadyExists) {
			slog.Error("update failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		} else {
			slog.Debug("update finished", slog.String("rqID", rqID), slog.String("op", op))
		}
	}()

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read(ctx)
	if err != nil {
		return err
	}
	if err = fn(&doc); err != nil {
		return err
	}
	return f.write(doc)
}

func (f *File) read(ctx context.Context) (document, error) {
	content, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("concepts file not found, creating empty one", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("path", f.path))
		doc := document{Concepts: []model.Concept{}, DeletedConcepts: []model.Concept{}}
		return doc, f.write(doc)
	}
	if err != nil {
		return document{}, fmt.Errorf("read concepts file: %w", err)
	}

	var doc document
	if err = json.Unmarshal(content, &doc); err != nil {
		return document{}, fmt.Errorf("%w: %w", repository.ErrCorrupted, err)
	}
	if doc.Concepts == nil {
		doc.Concepts = []model.Concept{}
	}
	if doc.DeletedConcepts == nil {
		doc.DeletedConcepts = []model.Concept{}
	}
	return doc, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (f *File) write(doc document) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal concepts: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create concepts dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".concepts-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmp.Name(), f.path)
}

func indexOf(concepts []model.Concept, id string) int {
	return slices.IndexFunc(concepts, func(c model.Concept) bool { return c.ID == id })
}
