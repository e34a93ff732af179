package os

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitSignal(t *testing.T) {
	c := make(chan os.Signal, 1)
	c <- syscall.SIGTERM
	called := false
	waitSignal(c, func() { called = true })
	assert.True(t, called)
}
