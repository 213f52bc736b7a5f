package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fabric-jumpstart/jumpgen/pkg/logging"
)

// CloseHandler blocks until an interrupt or termination signal arrives,
// runs the given stop functions in order and exits the program.
func CloseHandler(stops ...func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logging.Log.Debug("✔ shutting down")
	for _, stop := range stops {
		stop()
	}
	os.Exit(0)
}
