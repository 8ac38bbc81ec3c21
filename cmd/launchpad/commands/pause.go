package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/auditworks/launchpad/cmd/launchpad/config"
	"golang.org/x/term"
)

// pauseForOperator waits for ENTER before the console window closes, so an
// operator who double-clicked the launcher can read the outcome. Skipped
// when --no-pause is set or when stdin is not a terminal (pipelines, CI,
// wrapping scripts).
func pauseForOperator() {
	if config.Global.NoPause {
		return
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	fmt.Print("Press ENTER to close...")
	// Outcome of the read is irrelevant; any line or EOF releases the pause.
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	fmt.Println()
}
