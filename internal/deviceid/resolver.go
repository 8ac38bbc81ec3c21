package deviceid

import (
	"context"
	"fmt"

	"github.com/auditworks/launchpad/internal/logging"
	"github.com/google/uuid"
)

// GeneratedSource is the source name reported when every hardware provider
// came up empty and the identifier had to be generated randomly.
const GeneratedSource = "generated"

// Resolver walks the provider chain, persists the winning value, and reuses
// the persisted value on every later call.
type Resolver struct {
	store     *Store
	providers []Provider
}

// NewResolver creates a resolver over the platform's default provider chain.
func NewResolver(store *Store) *Resolver {
	return NewResolverWithProviders(store, defaultProviders()...)
}

// NewResolverWithProviders creates a resolver with an explicit provider
// chain. Used by tests and by callers that need a non-default priority order.
func NewResolverWithProviders(store *Store, providers ...Provider) *Resolver {
	return &Resolver{store: store, providers: providers}
}

// Resolve returns the device identifier for this installation.
//
// When the identifier file already holds a value, that value is returned
// unchanged and no provider is queried. Otherwise the provider chain is
// probed in priority order and the first non-empty sanitized value wins. If
// every provider misses, a random UUID is generated instead of persisting an
// empty identifier, and the fallback is logged as a warning so operators can
// tell hardware-derived identity from generated identity.
//
// The resolved identifier is persisted before returning, so a later run sees
// it and short-circuits.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	existing, err := r.store.Load()
	if err != nil {
		return "", err
	}
	if existing != "" {
		logging.Debug("Reusing persisted device identifier %s", logging.FormatDeviceID(existing))
		return existing, nil
	}

	id, source, err := r.derive(ctx)
	if err != nil {
		return "", err
	}

	if err := r.store.Save(id); err != nil {
		return "", err
	}

	logging.Success("Device identifier %s (source: %s)", logging.FormatDeviceID(id), source)
	return id, nil
}

// Refresh re-derives the identifier from the provider chain and overwrites
// the persisted file, ignoring any existing value. Supports the device-id
// command's --refresh flag; the launch flow never calls this.
func (r *Resolver) Refresh(ctx context.Context) (string, error) {
	id, source, err := r.derive(ctx)
	if err != nil {
		return "", err
	}
	if err := r.store.Save(id); err != nil {
		return "", err
	}
	logging.Success("Device identifier refreshed to %s (source: %s)", logging.FormatDeviceID(id), source)
	return id, nil
}

// derive probes the chain and returns the first usable value with the name of
// the provider that produced it. Falls back to a random UUID when the chain
// is exhausted.
func (r *Resolver) derive(ctx context.Context) (id, source string, err error) {
	for _, provider := range r.providers {
		raw, probeErr := provider.Probe(ctx)
		if probeErr != nil {
			logging.Debug("Identity provider %s unavailable: %v", provider.Name(), probeErr)
			continue
		}
		if value := sanitize(raw); value != "" {
			logging.Debug("Identity provider %s produced a value", provider.Name())
			return value, provider.Name(), nil
		}
		logging.Debug("Identity provider %s returned no value", provider.Name())
	}

	// Every hardware provider came up empty. Persisting an empty identifier
	// would silently break device identity for the lifetime of the install,
	// so generate a random one and say so.
	logging.Warn("No hardware identity provider returned a value; generating a random device identifier")
	generated, err := uuid.NewRandom()
	if err != nil {
		return "", "", fmt.Errorf("all identity providers failed and random generation failed: %w", err)
	}
	return generated.String(), GeneratedSource, nil
}
