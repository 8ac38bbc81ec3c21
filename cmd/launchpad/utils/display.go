// Package utils contains utility functions for the launchpad binary.
package utils

import (
	"fmt"
)

// DisplayBanner prints the Launchpad ASCII banner with the application name
// and launcher version before the launch flow starts.
func DisplayBanner(appName, version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░░░░░░░░░░░░░░░
 ░█░░░█▀█░█░█░█▀█░█▀▀░█░█░█▀█░█▀█░█▀▄░
 ░█░░░█▀█░█░█░█░█░█░░░█▀█░█▀▀░█▀█░█░█░
 ░▀▀▀░▀░▀░▀▀▀░▀░▀░▀▀▀░▀░▀░▀░░░▀░▀░▀▀░░
 ░░░░░░░░░░░░░░░░░░░░░░░░░░░░░`)
	fmt.Printf("\n Launchpad v%s - starting %s\n", version, appName)
	fmt.Println()
}
