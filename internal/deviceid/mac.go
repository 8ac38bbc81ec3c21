package deviceid

import (
	"context"
	"net"
)

// probeMACAddress returns the MAC address of the first usable network
// interface from the system's interface enumeration. Loopback interfaces and
// interfaces without a hardware address (tunnels, some virtual adapters) are
// skipped, matching the intent of "first real adapter row".
//
// The value is returned in Go's canonical colon-separated form; historic
// enumerations on some systems report the value wrapped in quotes, which the
// shared sanitization strips before use.
func probeMACAddress(ctx context.Context) (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if len(iface.HardwareAddr) == 0 {
			continue
		}
		return iface.HardwareAddr.String(), nil
	}
	return "", nil
}
