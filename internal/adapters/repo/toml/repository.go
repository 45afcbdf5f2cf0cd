package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	profilesFileMode = 0o600
	profilesDirMode  = 0o700
	tempFilePattern  = ".profiles-*.toml.tmp"
)

type ProfileRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(path string) (*ProfileRepository, error) {
	if path == "" {
		return nil, errors.New("profiles path is empty")
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{path: normalized, mu: lockForPath(normalized)}, nil
}

func (r *ProfileRepository) Path() string {
	return r.path
}

// Load returns the default profiles overridden by whatever the file sets.
// A missing file is not an error.
func (r *ProfileRepository) Load(ctx context.Context) (domain.StyleProfiles, error) {
	if err := ctx.Err(); err != nil {
		return domain.StyleProfiles{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.StyleProfiles{}, err
	}

	profiles := domain.DefaultStyleProfiles()
	for _, entry := range file.Profiles {
		persona, err := domain.ParsePersona(entry.Persona)
		if err != nil {
			return domain.StyleProfiles{}, fmt.Errorf("decode profiles file: %w", err)
		}
		profiles[persona] = entry.applyTo(profiles[persona])
	}

	if err := profiles.Validate(); err != nil {
		return domain.StyleProfiles{}, fmt.Errorf("validate profiles file: %w", err)
	}

	return profiles, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profiles domain.StyleProfiles, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := profiles.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !overwrite {
		if _, err := os.Stat(r.path); err == nil {
			return fmt.Errorf("%w: %s", domain.ErrProfilesExist, r.path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat profiles file: %w", err)
		}
	}

	file := fileSchema{}
	file.applyDefaults()
	for _, persona := range domain.Personas() {
		file.Profiles = append(file.Profiles, toSchema(persona, profiles[persona]))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *ProfileRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read profiles file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode profiles file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve profiles path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *ProfileRepository) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.path), profilesDirMode); err != nil {
		return fmt.Errorf("create profiles directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode profiles file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp profiles file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp profiles file: %w", err)
	}

	if err := tempFile.Chmod(profilesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp profiles file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp profiles file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace profiles file: %w", err)
	}

	cleanup = false

	return nil
}
