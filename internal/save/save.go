// Package save persists characters as one JSON file per character name.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/logger"
	"github.com/samdwyer/zyveria/internal/telemetry"
)

var (
	ErrNotFound    = errors.New("save not found")
	ErrCorrupt     = errors.New("save file corrupt")
	ErrInvalidName = errors.New("invalid character name")
)

const fileExt = ".json"

// Store reads and writes save files under Dir.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{Dir: dir}
}

// Path returns the file a character with this name is saved to.
func (s *Store) Path(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.Dir, name+fileExt), nil
}

// Save writes the character. The file is written beside its final path and
// renamed into place, so a crash never leaves a half-written save.
func (s *Store) Save(ctx context.Context, c *entity.Character) (err error) {
	ctx, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	path, err := s.Path(c.Name)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("path", path))

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Name, err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.Dir, "."+c.Name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}

	logger.FromContext(ctx).Info("Saved character", "name", c.Name, "path", path)
	return nil
}

// Load reads a character by name. It returns ErrNotFound when no save
// exists and ErrCorrupt when the file cannot be decoded or holds no character.
func (s *Store) Load(ctx context.Context, name string) (c *entity.Character, err error) {
	ctx, span := telemetry.Tracer("save").Start(ctx, "save.read")
	defer span.End()
	defer func() {
		if err != nil && !errors.Is(err, ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("path", path))

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	c = &entity.Character{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	// {} and null decode cleanly but describe no character.
	if strings.TrimSpace(c.Name) == "" || c.MaxHP <= 0 {
		return nil, fmt.Errorf("%w: %s: missing name or max hp", ErrCorrupt, path)
	}
	normalize(c)

	logger.FromContext(ctx).Info("Loaded character", "name", c.Name, "path", path)
	return c, nil
}

// LoadOrCreate loads the named character, or builds a new one with create
// when there is nothing usable on disk. Only an invalid name is an error.
func (s *Store) LoadOrCreate(ctx context.Context, name string, create func(name string) *entity.Character) (c *entity.Character, loaded bool, err error) {
	c, err = s.Load(ctx, name)
	switch {
	case err == nil:
		return c, true, nil
	case errors.Is(err, ErrInvalidName):
		return nil, false, err
	case !errors.Is(err, ErrNotFound):
		logger.FromContext(ctx).Warn("Unreadable save, starting fresh", "name", name, "error", err)
	}
	return create(strings.TrimSpace(name)), false, nil
}

// normalize fills collections that older or hand-edited saves leave out.
func normalize(c *entity.Character) {
	if c.Inventory == nil {
		c.Inventory = []string{}
	}
	if c.Spells == nil {
		c.Spells = []entity.Spell{}
	}
	if c.Weapon.Name == "" {
		c.Weapon = entity.Fists()
	}
}
