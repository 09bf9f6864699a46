package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akito/kotoba/ent"
	"github.com/akito/kotoba/ent/lessonpackage"
	"github.com/akito/kotoba/internal/lesson"
)

// LessonRepo persists merged lesson packages. It satisfies
// lesson.Store.
type LessonRepo struct {
	client *ent.Client
}

// GetPackage loads the package for a descriptor key.
func (r *LessonRepo) GetPackage(ctx context.Context, key string) (*lesson.LessonPackage, error) {
	row, err := r.client.LessonPackage.Query().
		Where(lessonpackage.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, lesson.ErrNotFound
		}
		return nil, fmt.Errorf("query lesson package: %w", err)
	}
	return decodePackage(row)
}

// PutPackage writes a package exactly once. The unique key constraint
// turns a concurrent duplicate write into lesson.ErrAlreadyExists.
func (r *LessonRepo) PutPackage(ctx context.Context, pkg *lesson.LessonPackage) error {
	dataMap, err := docToMap(pkg)
	if err != nil {
		return fmt.Errorf("marshal lesson package: %w", err)
	}

	status := make(map[string]string, len(pkg.Status))
	for kind, st := range pkg.Status {
		status[string(kind)] = string(st)
	}

	_, err = r.client.LessonPackage.Create().
		SetKey(pkg.Descriptor.Key()).
		SetTopic(pkg.Descriptor.Topic).
		SetLevel(pkg.Descriptor.Level).
		SetTitle(pkg.Title).
		SetModel(pkg.Model).
		SetData(dataMap).
		SetStatus(status).
		SetCreatedAt(pkg.CreatedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return lesson.ErrAlreadyExists
		}
		return fmt.Errorf("save lesson package: %w", err)
	}
	return nil
}

// ListPackages returns all stored packages, newest first.
func (r *LessonRepo) ListPackages(ctx context.Context) ([]*lesson.LessonPackage, error) {
	rows, err := r.client.LessonPackage.Query().
		Order(ent.Desc(lessonpackage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lesson packages: %w", err)
	}

	pkgs := make([]*lesson.LessonPackage, 0, len(rows))
	for _, row := range rows {
		pkg, err := decodePackage(row)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// PatchGenerationStatus merges section statuses into the stored status
// column. Only the status column is touched; the package document is
// immutable after PutPackage.
func (r *LessonRepo) PatchGenerationStatus(ctx context.Context, key string, patch map[lesson.SectionKind]lesson.SectionStatus) error {
	row, err := r.client.LessonPackage.Query().
		Where(lessonpackage.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return lesson.ErrNotFound
		}
		return fmt.Errorf("query lesson package: %w", err)
	}

	merged := make(map[string]string, len(row.Status)+len(patch))
	for kind, st := range row.Status {
		merged[kind] = st
	}
	for kind, st := range patch {
		merged[string(kind)] = string(st)
	}

	if _, err := row.Update().SetStatus(merged).Save(ctx); err != nil {
		return fmt.Errorf("patch generation status: %w", err)
	}
	return nil
}

// DeletePackage removes a package. Used by reset; generation never
// deletes.
func (r *LessonRepo) DeletePackage(ctx context.Context, key string) error {
	_, err := r.client.LessonPackage.Delete().
		Where(lessonpackage.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete lesson package: %w", err)
	}
	return nil
}

// docToMap converts a document to map[string]any for ent JSON storage.
func docToMap(doc any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodePackage(row *ent.LessonPackage) (*lesson.LessonPackage, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var pkg lesson.LessonPackage
	if err := json.Unmarshal(b, &pkg); err != nil {
		return nil, fmt.Errorf("unmarshal lesson package: %w", err)
	}

	// The status column is authoritative; it may have been patched
	// after the document was written.
	if len(row.Status) > 0 {
		pkg.Status = make(map[lesson.SectionKind]lesson.SectionStatus, len(row.Status))
		for kind, st := range row.Status {
			pkg.Status[lesson.SectionKind(kind)] = lesson.SectionStatus(st)
		}
	}
	return &pkg, nil
}
