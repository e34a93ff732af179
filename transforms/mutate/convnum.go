package mutate

import (
	"errors"

	"github.com/qiniu/convkit/number"
	"github.com/qiniu/convkit/transforms"
	. "github.com/qiniu/convkit/utils/models"
)

var (
	_ transforms.Transformer = &ConvNum{}
	_ transforms.Initializer = &ConvNum{}
)

// ConvNum 把字符串字段解析为 long 或 float，支持 0x 开头的十六进制
type ConvNum struct {
	Key string `json:"key"`
	New string `json:"new"`

	keys  []string
	news  []string
	stats StatsInfo
}

func (c *ConvNum) Init() error {
	c.keys = GetKeys(c.Key)
	if len(c.keys) == 0 {
		return errors.New("convnum transformer key is empty")
	}
	c.news = GetKeys(c.New)
	return nil
}

func (c *ConvNum) Transform(datas []Data) ([]Data, error) {
	if len(c.keys) == 0 {
		if err := c.Init(); err != nil {
			c.stats, _ = transforms.SetStatsInfo(err, c.stats, int64(len(datas)), int64(len(datas)), c.Type())
			return datas, err
		}
	}
	errNum, err := transforms.TransformField(datas, c.Key, c.keys, c.news, convertNumber)

	var fmtErr error
	c.stats, fmtErr = transforms.SetStatsInfo(err, c.stats, int64(errNum), int64(len(datas)), c.Type())
	return datas, fmtErr
}

func convertNumber(val interface{}) (interface{}, error) {
	str, ok := val.(string)
	if !ok {
		return nil, errors.New("data type is not string")
	}
	n, err := number.Parse(str)
	if err != nil {
		return nil, err
	}
	return n.Value(), nil
}

func (c *ConvNum) Description() string {
	return `将字符串解析为整数或浮点数, 支持 0x 开头的十六进制, 如 "-0xAD4" 变为 -2772, "-123.45" 变为 -123.45`
}

func (c *ConvNum) Type() string {
	return "convnum"
}

func (c *ConvNum) SampleConfig() string {
	return `{
		"type":"convnum",
		"key":"NumberFieldKey",
		"new":"NewFieldKey"
	}`
}

func (c *ConvNum) ConfigOptions() []Option {
	return []Option{
		transforms.KeyFieldName,
		transforms.KeyFieldNew,
	}
}

func (c *ConvNum) Stats() StatsInfo {
	return c.stats
}

func init() {
	transforms.Add("convnum", func() transforms.Transformer {
		return &ConvNum{}
	})
}
