package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/qiniu/convkit/conf"
	"github.com/qiniu/convkit/mgr"
	. "github.com/qiniu/convkit/utils/models"
)

func TestLoadSampleConfig(t *testing.T) {
	var c Config
	require.NoError(t, config.LoadEx(&c, "convkit.conf"))
	assert.Equal(t, 1, c.DebugLevel)
	assert.Equal(t, "127.0.0.1:4000", c.BindHost)
	require.Len(t, c.Transforms, 3)

	m, err := mgr.NewManager(c.ManagerConfig)
	require.NoError(t, err)
	datas, err := m.Transform([]Data{{"value": "0x10", "timestamp": 123456789, "id": 954786}})
	assert.NoError(t, err)
	assert.Equal(t, []Data{{
		"value":     int64(16),
		"timestamp": 123456789,
		"date":      "11-29-1973",
		"id":        954786,
		"id_hex":    "A2 91 0E",
	}}, datas)
}
