package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// ErrNoLicense is returned when no license has been activated yet.
var ErrNoLicense = errors.New("no license activated")

const licenseLockRetry = 50 * time.Millisecond

// LicenseStore persists the activation record.
type LicenseStore interface {
	Load(ctx context.Context) (m.License, error)
	Save(ctx context.Context, license m.License) error
}

// FileLicenseStore keeps the license as a YAML file guarded by a lock file.
type FileLicenseStore struct {
	path m.Path
}

// NewFileLicenseStore constructs a store backed by path.
func NewFileLicenseStore(path m.Path) *FileLicenseStore {
	return &FileLicenseStore{path: path}
}

// DefaultLicensePath returns the per-user license location.
func DefaultLicensePath() m.Path {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return m.Path(filepath.Join(".inspecto", "license.yaml"))
		}

		dir = home
	}

	return m.Path(filepath.Join(dir, "inspecto", "license.yaml"))
}

// Path returns the license file location.
func (s *FileLicenseStore) Path() m.Path {
	return s.path
}

// Load reads the stored license. It returns ErrNoLicense when the file does
// not exist.
func (s *FileLicenseStore) Load(ctx context.Context) (m.License, error) {
	lock, err := s.lock(ctx, false)
	if err != nil {
		return m.License{}, err
	}

	defer s.unlock(lock)

	data, err := os.ReadFile(string(s.path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.License{}, ErrNoLicense
		}

		return m.License{}, fmt.Errorf("read license: %w", err)
	}

	var license m.License
	if err := yaml.Unmarshal(data, &license); err != nil {
		return m.License{}, fmt.Errorf("parse license %s: %w", s.path, err)
	}

	if license.Key == "" {
		return m.License{}, ErrNoLicense
	}

	return license, nil
}

// Save writes license, replacing any previous record.
func (s *FileLicenseStore) Save(ctx context.Context, license m.License) error {
	if err := os.MkdirAll(filepath.Dir(string(s.path)), 0o750); err != nil {
		return fmt.Errorf("create license folder: %w", err)
	}

	lock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}

	defer s.unlock(lock)

	data, err := yaml.Marshal(license)
	if err != nil {
		return fmt.Errorf("encode license: %w", err)
	}

	if err := os.WriteFile(string(s.path), data, 0o600); err != nil {
		return fmt.Errorf("write license: %w", err)
	}

	slog.Debug("Saved license", "path", s.path)

	return nil
}

func (s *FileLicenseStore) lock(ctx context.Context, exclusive bool) (*flock.Flock, error) {
	lockPath := string(s.path) + ".lock"
	if _, err := os.Stat(filepath.Dir(lockPath)); err != nil {
		// Nothing stored yet and nothing to guard.
		return nil, nil //nolint:nilnil
	}

	lock := flock.New(lockPath)

	var (
		locked bool
		err    error
	)

	if exclusive {
		locked, err = lock.TryLockContext(ctx, licenseLockRetry)
	} else {
		locked, err = lock.TryRLockContext(ctx, licenseLockRetry)
	}

	if err != nil {
		return nil, fmt.Errorf("lock license: %w", err)
	}

	if !locked {
		return nil, fmt.Errorf("lock license: %s is busy", lockPath)
	}

	return lock, nil
}

func (s *FileLicenseStore) unlock(lock *flock.Flock) {
	if lock == nil {
		return
	}

	if err := lock.Unlock(); err != nil {
		slog.Error("Failed to release license lock", "path", lock.Path(), "error", err)
	}
}
