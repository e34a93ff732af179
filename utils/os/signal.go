package os

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/qiniu/x/log"
)

// WaitForInterrupt 阻塞直到收到退出信号，然后执行 interrupt
func WaitForInterrupt(interrupt func()) {

	// Set up channel on which to send signal notifications.
	// We must use a buffered channel or risk missing the signal
	// if we're not ready to receive when the signal is sent.
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, os.Interrupt, syscall.SIGQUIT)
	waitSignal(c, interrupt)
}

func waitSignal(c <-chan os.Signal, interrupt func()) {
	// Block until a signal is received.
	s := <-c

	log.Infof("Receiving signal: %v", s)

	interrupt()
}
