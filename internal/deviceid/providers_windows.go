//go:build windows

package deviceid

import (
	"context"
	"os/exec"

	"golang.org/x/sys/windows/registry"
)

// defaultProviders returns the Windows hardware identity chain in priority
// order: SMBIOS product UUID, BIOS serial number, first usable MAC address.
func defaultProviders() []Provider {
	return []Provider{
		NewProvider("product-uuid", probeProductUUID),
		NewProvider("bios-serial", probeBIOSSerial),
		NewProvider("mac-address", probeMACAddress),
	}
}

// probeProductUUID reads the SMBIOS product UUID via wmic, falling back to
// the registry MachineGuid when wmic is unavailable (removed on newer
// Windows 11 builds). MachineGuid is generated at Windows installation and
// is the conventional substitute identifier.
func probeProductUUID(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx,
		"wmic", "path", "win32_computersystemproduct", "get", "uuid").Output()
	if err == nil {
		if uuid := firstDataRow(string(out)); uuid != "" {
			return uuid, nil
		}
	}
	return machineGuid()
}

// machineGuid retrieves HKLM\SOFTWARE\Microsoft\Cryptography\MachineGuid.
// The WOW64_64KEY flag makes the lookup work from 32-bit launcher builds on
// 64-bit Windows.
func machineGuid() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Cryptography`, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", err
	}
	defer k.Close()

	guid, _, err := k.GetStringValue("MachineGuid")
	if err != nil {
		return "", err
	}
	return guid, nil
}

// probeBIOSSerial reads the BIOS serial number via wmic. Output is tabular
// ("SerialNumber" header then the value), so the first data row is taken.
func probeBIOSSerial(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "wmic", "bios", "get", "serialnumber").Output()
	if err != nil {
		return "", err
	}
	return firstDataRow(string(out)), nil
}
