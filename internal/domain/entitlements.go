package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"inspecto.dev/pkg/inspecto/internal/adapter"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

const licenseKeyPrefix = "INSPECTO-PRO-"

// Activation failures, wrapped in *ActivationError.
var (
	ErrInvalidKeyFormat = errors.New("license key format is incorrect")
	ErrInvalidKey       = errors.New("license key is not valid")
	ErrMachineMismatch  = errors.New("license is already bound to another key or machine")
)

// ActivationError reports why a key could not be activated.
type ActivationError struct {
	Err error
}

func (e *ActivationError) Error() string {
	return "activate license: " + e.Err.Error()
}

// Unwrap exposes the failure reason.
func (e *ActivationError) Unwrap() error {
	return e.Err
}

// Entitlements gates paid features. The verification scheme is injected; the
// rest of the application only asks whether the user is entitled.
type Entitlements interface {
	IsEntitled(ctx context.Context) bool
	Activate(ctx context.Context, key string) error
	Status(ctx context.Context) m.EntitlementStatus
}

// FingerprintFunc identifies the current machine.
type FingerprintFunc func() string

// EntitlementsOption customises the license manager.
type EntitlementsOption func(*licenseManager)

// WithFingerprint replaces the machine fingerprint source.
func WithFingerprint(fn FingerprintFunc) EntitlementsOption {
	return func(lm *licenseManager) {
		lm.fingerprint = fn
	}
}

// WithClock replaces the activation timestamp source.
func WithClock(now func() time.Time) EntitlementsOption {
	return func(lm *licenseManager) {
		lm.now = now
	}
}

type licenseManager struct {
	store       adapter.LicenseStore
	verifier    KeyVerifier
	fingerprint FingerprintFunc
	now         func() time.Time
}

// NewEntitlements constructs the license manager.
func NewEntitlements(store adapter.LicenseStore, verifier KeyVerifier, opts ...EntitlementsOption) Entitlements {
	lm := &licenseManager{
		store:       store,
		verifier:    verifier,
		fingerprint: MachineFingerprint,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(lm)
	}

	return lm
}

// IsEntitled reports whether a stored, valid license is bound to this machine.
func (lm *licenseManager) IsEntitled(ctx context.Context) bool {
	return lm.Status(ctx).Entitled
}

func (lm *licenseManager) Status(ctx context.Context) m.EntitlementStatus {
	status := m.EntitlementStatus{Fingerprint: lm.fingerprint()}

	license, err := lm.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, adapter.ErrNoLicense) {
			slog.Warn("Failed to load license", "error", err)
		}

		return status
	}

	status.Key = license.Key
	status.Entitled = lm.verifier.Verify(license.Key) && license.Fingerprint == status.Fingerprint

	return status
}

// Activate validates key and binds it to this machine.
func (lm *licenseManager) Activate(ctx context.Context, key string) error {
	key = NormalizeKey(key)

	if !ValidKeyFormat(key) {
		return &ActivationError{Err: ErrInvalidKeyFormat}
	}

	if !lm.verifier.Verify(key) {
		return &ActivationError{Err: ErrInvalidKey}
	}

	fingerprint := lm.fingerprint()

	existing, err := lm.store.Load(ctx)

	switch {
	case errors.Is(err, adapter.ErrNoLicense):
	case err != nil:
		return fmt.Errorf("load license: %w", err)
	case existing.Key == key && existing.Fingerprint == fingerprint:
		slog.Info("License already active on this machine")
		return nil
	default:
		return &ActivationError{Err: ErrMachineMismatch}
	}

	license := m.License{Key: key, Fingerprint: fingerprint, ActivatedAt: lm.now().UTC()}
	if err := lm.store.Save(ctx, license); err != nil {
		return fmt.Errorf("save license: %w", err)
	}

	slog.Info("License activated", "fingerprint", fingerprint)

	return nil
}

// NormalizeKey trims and upper-cases a user supplied key.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// ValidKeyFormat checks the INSPECTO-PRO-XXXX-XXXX shape.
func ValidKeyFormat(key string) bool {
	parts := strings.Split(key, "-")
	if len(parts) < 4 || parts[0] != "INSPECTO" || parts[1] != "PRO" {
		return false
	}

	for _, part := range parts[2:] {
		if part == "" {
			return false
		}
	}

	return true
}

// MachineFingerprint hashes the host name, OS and architecture.
func MachineFingerprint() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return SHA256Hex(host + runtime.GOOS + runtime.GOARCH)
}
