//go:build linux

package deviceid

import (
	"context"
	"os"
)

// defaultProviders returns the Linux hardware identity chain in priority
// order: SMBIOS product UUID, board serial number, first usable MAC address.
func defaultProviders() []Provider {
	return []Provider{
		NewProvider("product-uuid", probeProductUUID),
		NewProvider("bios-serial", probeBoardSerial),
		NewProvider("mac-address", probeMACAddress),
	}
}

// probeProductUUID reads the DMI product UUID from sysfs. Reading
// product_uuid typically requires root; permission errors degrade to a miss
// so the chain can fall through.
func probeProductUUID(ctx context.Context) (string, error) {
	return readSysfsValue("/sys/class/dmi/id/product_uuid")
}

// probeBoardSerial reads the mainboard serial number from sysfs. Containers
// and stripped VMs often lack DMI entries entirely; that is a miss, not an
// error.
func probeBoardSerial(ctx context.Context) (string, error) {
	return readSysfsValue("/sys/class/dmi/id/board_serial")
}

// readSysfsValue reads a single-value sysfs attribute. A missing or
// unreadable attribute returns an empty value rather than an error because
// absence is the normal case on hosts without DMI data.
func readSysfsValue(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil
	}
	return string(data), nil
}
