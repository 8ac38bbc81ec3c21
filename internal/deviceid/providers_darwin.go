//go:build darwin

package deviceid

import (
	"context"
	"os/exec"
	"strings"
)

// defaultProviders returns the macOS hardware identity chain in priority
// order: IOPlatform UUID, platform serial number, first usable MAC address.
func defaultProviders() []Provider {
	return []Provider{
		NewProvider("product-uuid", probeProductUUID),
		NewProvider("bios-serial", probePlatformSerial),
		NewProvider("mac-address", probeMACAddress),
	}
}

// probeProductUUID reads the IOPlatformUUID from the IOKit registry.
func probeProductUUID(ctx context.Context) (string, error) {
	return probeIORegValue(ctx, "IOPlatformUUID")
}

// probePlatformSerial reads the hardware serial number from the IOKit
// registry, the macOS equivalent of a BIOS serial.
func probePlatformSerial(ctx context.Context) (string, error) {
	return probeIORegValue(ctx, "IOPlatformSerialNumber")
}

// probeIORegValue runs ioreg against IOPlatformExpertDevice and extracts the
// quoted value for the given key from output shaped like:
//
//	"IOPlatformUUID" = "XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX"
func probeIORegValue(ctx context.Context, key string) (string, error) {
	out, err := exec.CommandContext(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
	if err != nil {
		return "", err
	}
	return parseBetween(string(out), key+`" = "`, `"`), nil
}

// parseBetween returns the substring of s between the first occurrence of a
// and the next occurrence of b, or "" when either marker is absent.
func parseBetween(s, a, b string) string {
	i := strings.Index(s, a)
	if i < 0 {
		return ""
	}
	i += len(a)
	j := strings.Index(s[i:], b)
	if j < 0 {
		return ""
	}
	return s[i : i+j]
}
