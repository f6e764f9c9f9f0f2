package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"courseforge/internal/modules/plan/domain"
	apperrors "courseforge/internal/platform/errors"
)

// FileSnapshotStore keeps one pretty-printed JSON snapshot per course
// under <dir>/<slug>.json, so plans survive rebuilds of the index and
// diff cleanly under version control.
type FileSnapshotStore struct {
	dir string
}

func NewFileSnapshotStore(dir string) *FileSnapshotStore {
	return &FileSnapshotStore{dir: dir}
}

func (s *FileSnapshotStore) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	path := s.path(snap.CourseSlug)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *FileSnapshotStore) Load(ctx context.Context, courseSlug string) (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path(courseSlug))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, fmt.Errorf("%w: %s", apperrors.ErrNoSnapshot, courseSlug)
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", courseSlug, err)
	}
	return snap, nil
}

func (s *FileSnapshotStore) Delete(ctx context.Context, courseSlug string) error {
	if err := os.Remove(s.path(courseSlug)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrNoSnapshot, courseSlug)
		}
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (s *FileSnapshotStore) path(slug string) string {
	return filepath.Join(s.dir, slug+".json")
}
