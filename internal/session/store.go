package session

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

const recordExt = ".json"

// Store keeps one JSON document per session name under a directory.
// There is no locking; file existence is the only state.
type Store struct {
	dir     string
	baseURL string
	fs      afs.Service
}

// NewStore opens the store at dir, creating the directory if needed.
func NewStore(ctx context.Context, dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("sessions directory cannot be empty")
	}
	fs := afs.New()

	exists, err := fs.Exists(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("check sessions directory: %w", err)
	}
	if !exists {
		if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("create sessions directory: %w", err)
		}
	}

	return &Store{
		dir:     dir,
		baseURL: url.Normalize(dir, file.Scheme),
		fs:      fs,
	}, nil
}

// Dir returns the directory holding the records.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path of a session record.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+recordExt)
}

func (s *Store) recordURL(name string) string {
	return url.Join(s.baseURL, name+recordExt)
}

// ValidateName rejects names that would escape the sessions directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case strings.ContainsAny(name, `/\`), name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Exists reports whether a record named name is stored.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	ok, err := s.fs.Exists(ctx, s.recordURL(name))
	if err != nil {
		return false, fmt.Errorf("check session %s: %w", name, err)
	}
	return ok, nil
}

// Load reads the record named name.
func (s *Store) Load(ctx context.Context, name string) (*Record, error) {
	ok, err := s.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	data, err := s.fs.DownloadWithURL(ctx, s.recordURL(name))
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", name, err)
	}
	rec, err := decodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", name, err)
	}
	return rec, nil
}

// Save writes a new record. An existing record with the same name is left
// untouched and ErrSessionExists is returned.
func (s *Store) Save(ctx context.Context, name string, rec *Record) error {
	ok, err := s.Exists(ctx, name)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("%w: %s", ErrSessionExists, name)
	}
	data, err := encodeRecord(rec)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", name, err)
	}
	if err := s.fs.Upload(ctx, s.recordURL(name), file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write session %s: %w", name, err)
	}
	return nil
}

// Delete removes the record named name.
func (s *Store) Delete(ctx context.Context, name string) error {
	ok, err := s.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	if err := s.fs.Delete(ctx, s.recordURL(name)); err != nil {
		return fmt.Errorf("delete session %s: %w", name, err)
	}
	return nil
}

// List returns the names of all stored records, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	names := []string{}
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		name := object.Name()
		if !strings.HasSuffix(name, recordExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, recordExt))
	}
	sort.Strings(names)
	return names, nil
}
