package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	*num = "123."
	*epoch = 123456789
	*hexNum = "954786"
	*order = "little"
	*asJSON = false

	var buf bytes.Buffer
	err := run(&buf, map[string]bool{"n": true, "t": true, "x": true})
	assert.NoError(t, err)
	assert.Equal(t, "123.0\n11-29-1973\nA2 91 0E\n", buf.String())

	buf.Reset()
	*asJSON = true
	*num = "-0xAD4"
	err = run(&buf, map[string]bool{"n": true})
	assert.NoError(t, err)
	assert.Equal(t, `[{"op":"number","input":"-0xAD4","output":-2772}]`+"\n", buf.String())
	*asJSON = false

	*order = "small"
	assert.Error(t, run(&buf, map[string]bool{"x": true}))
	*hexNum = "1.5"
	*order = "big"
	assert.Error(t, run(&buf, map[string]bool{"x": true}))
	*epoch = -1
	assert.Error(t, run(&buf, map[string]bool{"t": true}))
	*num = "0xAZ4"
	assert.Error(t, run(&buf, map[string]bool{"n": true}))
}
