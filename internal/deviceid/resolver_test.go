package deviceid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/auditworks/launchpad/internal/logging"
)

// TestMain suppresses log output so test runs stay readable.
func TestMain(m *testing.M) {
	logging.SetOutput(nil)
	os.Exit(m.Run())
}

// countingProvider records how many times it was probed, so tests can assert
// which chain tiers were consulted.
type countingProvider struct {
	name   string
	value  string
	err    error
	probes int
}

func (p *countingProvider) Name() string { return p.name }

func (p *countingProvider) Probe(ctx context.Context) (string, error) {
	p.probes++
	return p.value, p.err
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "device_id.txt"))
}

// TestResolvePrimaryProviderWins verifies that a non-empty primary value is
// returned verbatim and that no fallback tier is ever queried.
func TestResolvePrimaryProviderWins(t *testing.T) {
	primary := &countingProvider{name: "product-uuid", value: "4C4C4544-0042-3510-8054-B4C04F525332"}
	secondary := &countingProvider{name: "bios-serial", value: "ABC123"}
	tertiary := &countingProvider{name: "mac-address", value: "aa:bb:cc:dd:ee:ff"}

	r := NewResolverWithProviders(newTestStore(t), primary, secondary, tertiary)

	id, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != primary.value {
		t.Errorf("expected primary value %q, got %q", primary.value, id)
	}
	if secondary.probes != 0 || tertiary.probes != 0 {
		t.Errorf("fallback providers were queried: bios-serial=%d mac-address=%d probes",
			secondary.probes, tertiary.probes)
	}
}

// TestResolveFallbackChain verifies the priority order across the chain
// tiers, including error and empty-value misses.
func TestResolveFallbackChain(t *testing.T) {
	tests := []struct {
		name        string
		primary     *countingProvider
		secondary   *countingProvider
		tertiary    *countingProvider
		expected    string
		description string
	}{
		{
			name:        "empty primary falls to secondary",
			primary:     &countingProvider{name: "product-uuid"},
			secondary:   &countingProvider{name: "bios-serial", value: "SER-42"},
			tertiary:    &countingProvider{name: "mac-address", value: "aa:bb:cc:dd:ee:ff"},
			expected:    "SER-42",
			description: "second tier should win when the first is empty",
		},
		{
			name:        "failing providers fall to mac",
			primary:     &countingProvider{name: "product-uuid", err: errors.New("wmic not found")},
			secondary:   &countingProvider{name: "bios-serial", err: errors.New("no dmi")},
			tertiary:    &countingProvider{name: "mac-address", value: "aa:bb:cc:dd:ee:ff"},
			expected:    "aa:bb:cc:dd:ee:ff",
			description: "provider errors should count as misses, not failures",
		},
		{
			name:        "placeholder primary is rejected",
			primary:     &countingProvider{name: "product-uuid", value: "To Be Filled By O.E.M."},
			secondary:   &countingProvider{name: "bios-serial", value: "SER-42"},
			tertiary:    &countingProvider{name: "mac-address"},
			expected:    "SER-42",
			description: "vendor placeholder values should advance the chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolverWithProviders(newTestStore(t), tt.primary, tt.secondary, tt.tertiary)

			id, err := r.Resolve(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v (%s)", err, tt.description)
			}
			if id != tt.expected {
				t.Errorf("expected %q, got %q (%s)", tt.expected, id, tt.description)
			}
		})
	}
}

// TestResolveStripsQuotes verifies that quote characters are removed from
// fallback values, matching the observed quoted MAC enumeration format.
func TestResolveStripsQuotes(t *testing.T) {
	primary := &countingProvider{name: "product-uuid"}
	secondary := &countingProvider{name: "bios-serial"}
	tertiary := &countingProvider{name: "mac-address", value: `"AA-BB-CC-DD-EE-FF"`}

	r := NewResolverWithProviders(newTestStore(t), primary, secondary, tertiary)

	id, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "AA-BB-CC-DD-EE-FF" {
		t.Errorf("expected quotes stripped, got %q", id)
	}
}

// TestResolveIdempotent verifies that a second resolve with the identifier
// file already present re-invokes no provider and returns the persisted value
// unchanged.
func TestResolveIdempotent(t *testing.T) {
	primary := &countingProvider{name: "product-uuid", value: "FIRST-VALUE"}
	store := newTestStore(t)

	r := NewResolverWithProviders(store, primary)

	first, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on first resolve: %v", err)
	}

	// Change what the provider would report; the persisted value must win.
	primary.value = "SECOND-VALUE"
	probesAfterFirst := primary.probes

	second, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on second resolve: %v", err)
	}
	if second != first {
		t.Errorf("expected persisted value %q, got %q", first, second)
	}
	if primary.probes != probesAfterFirst {
		t.Errorf("provider was re-probed on second resolve: %d -> %d probes",
			probesAfterFirst, primary.probes)
	}
}

// TestResolveGeneratesWhenAllEmpty verifies that an exhausted chain yields a
// generated identifier instead of persisting an empty string.
func TestResolveGeneratesWhenAllEmpty(t *testing.T) {
	store := newTestStore(t)
	r := NewResolverWithProviders(store,
		&countingProvider{name: "product-uuid"},
		&countingProvider{name: "bios-serial"},
		&countingProvider{name: "mac-address"},
	)

	id, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("resolved identifier is empty; expected a generated UUID")
	}

	persisted, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load persisted identifier: %v", err)
	}
	if persisted != id {
		t.Errorf("persisted identifier %q does not match resolved %q", persisted, id)
	}
}

// TestRefreshOverwrites verifies that Refresh re-derives and overwrites an
// existing identifier.
func TestRefreshOverwrites(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save("old-identifier"); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	primary := &countingProvider{name: "product-uuid", value: "new-identifier"}
	r := NewResolverWithProviders(store, primary)

	id, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "new-identifier" {
		t.Errorf("expected refreshed value, got %q", id)
	}

	persisted, _ := store.Load()
	if persisted != "new-identifier" {
		t.Errorf("expected store overwritten, got %q", persisted)
	}
}

// TestSanitize tests sanitize function
func TestSanitize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		description string
	}{
		{
			name:        "plain value",
			input:       "abc-123",
			expected:    "abc-123",
			description: "clean values pass through",
		},
		{
			name:        "surrounding whitespace",
			input:       "  abc-123 \r\n",
			expected:    "abc-123",
			description: "whitespace should be trimmed",
		},
		{
			name:        "quoted value",
			input:       `"aa:bb:cc:dd:ee:ff"`,
			expected:    "aa:bb:cc:dd:ee:ff",
			description: "quote characters should be stripped",
		},
		{
			name:        "embedded quotes",
			input:       `aa"bb"cc`,
			expected:    "aabbcc",
			description: "all quote characters should be stripped, not just surrounding ones",
		},
		{
			name:        "oem placeholder",
			input:       "To Be Filled By O.E.M.",
			expected:    "",
			description: "vendor placeholder should be rejected",
		},
		{
			name:        "zero uuid placeholder",
			input:       "00000000-0000-0000-0000-000000000000",
			expected:    "",
			description: "all-zero UUID should be rejected",
		},
		{
			name:        "whitespace only",
			input:       "   \n",
			expected:    "",
			description: "whitespace-only values should become empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitize(tt.input)
			if got != tt.expected {
				t.Errorf("sanitize(%q) = %q, expected %q (%s)", tt.input, got, tt.expected, tt.description)
			}
		})
	}
}
