package model

import "time"

// License is the persisted activation record.
type License struct {
	Key         string    `yaml:"key"`
	Fingerprint string    `yaml:"fingerprint"`
	ActivatedAt time.Time `yaml:"activated_at"`
}

// EntitlementStatus summarises the current entitlement for display.
type EntitlementStatus struct {
	Entitled    bool
	Key         string
	Fingerprint string
}
