package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/qiniu/convkit/utils/models"
)

func TestConvNumTransformer(t *testing.T) {
	c := &ConvNum{Key: "num"}
	assert.NoError(t, c.Init())
	datas := []Data{
		{"num": "12345"},
		{"num": "-123.45"},
		{"num": "-0xAD4"},
		{"num": ".45"},
	}
	res, err := c.Transform(datas)
	assert.NoError(t, err)
	exp := []Data{
		{"num": int64(12345)},
		{"num": float64(-123.45)},
		{"num": int64(-2772)},
		{"num": float64(0.45)},
	}
	assert.Equal(t, exp, res)
	assert.Equal(t, StatsInfo{Success: 4}, c.Stats())
}

func TestConvNumTransformerNewKey(t *testing.T) {
	c := &ConvNum{Key: "raw.num", New: "parsed"}
	datas := []Data{
		{"raw": map[string]interface{}{"num": "0xff"}},
		{"raw": map[string]interface{}{"num": "0xAZ4"}},
		{"raw": map[string]interface{}{"num": 12}},
		{"other": "12.3.45"},
	}
	res, err := c.Transform(datas)
	assert.Error(t, err)
	exp := []Data{
		{"raw": map[string]interface{}{"num": "0xff"}, "parsed": int64(255)},
		{"raw": map[string]interface{}{"num": "0xAZ4"}},
		{"raw": map[string]interface{}{"num": 12}},
		{"other": "12.3.45"},
	}
	assert.Equal(t, exp, res)
	stats := c.Stats()
	assert.Equal(t, int64(3), stats.Errors)
	assert.Equal(t, int64(1), stats.Success)
	assert.NotEmpty(t, stats.LastError)
}

func TestConvNumTransformerEmptyKey(t *testing.T) {
	c := &ConvNum{}
	datas := []Data{{"num": "1"}}
	res, err := c.Transform(datas)
	assert.Error(t, err)
	assert.Equal(t, []Data{{"num": "1"}}, res)
	assert.Equal(t, int64(1), c.Stats().Errors)
}
