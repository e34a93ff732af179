package mutate

import (
	"errors"

	"github.com/qiniu/convkit/endian"
	"github.com/qiniu/convkit/transforms"
	. "github.com/qiniu/convkit/utils/models"
)

var (
	_ transforms.Transformer = &EndianHex{}
	_ transforms.Initializer = &EndianHex{}
)

type EndianHex struct {
	Key    string `json:"key"`
	New    string `json:"new"`
	Endian string `json:"endian"`

	keys  []string
	news  []string
	order endian.Order
	stats StatsInfo
}

func (e *EndianHex) Init() error {
	if e.Endian == "" {
		e.Endian = string(endian.DefaultOrder)
	}
	order, err := endian.ParseOrder(e.Endian)
	if err != nil {
		return err
	}
	e.keys = GetKeys(e.Key)
	if len(e.keys) == 0 {
		return errors.New("endianhex transformer key is empty")
	}
	e.news = GetKeys(e.New)
	e.order = order
	return nil
}

func (e *EndianHex) Transform(datas []Data) ([]Data, error) {
	if e.order == "" {
		if err := e.Init(); err != nil {
			e.stats, _ = transforms.SetStatsInfo(err, e.stats, int64(len(datas)), int64(len(datas)), e.Type())
			return datas, err
		}
	}
	errNum, err := transforms.TransformField(datas, e.Key, e.keys, e.news, func(val interface{}) (interface{}, error) {
		num, err := transforms.ToInt64(val)
		if err != nil {
			return nil, err
		}
		return endian.Format(num, e.order), nil
	})

	var fmtErr error
	e.stats, fmtErr = transforms.SetStatsInfo(err, e.stats, int64(errNum), int64(len(datas)), e.Type())
	return datas, fmtErr
}

func (e *EndianHex) Description() string {
	return `将整数转换为以空格分隔的十六进制字节, 如 954786 大端为 "0E 91 A2", 小端为 "A2 91 0E"`
}

func (e *EndianHex) Type() string {
	return "endianhex"
}

func (e *EndianHex) SampleConfig() string {
	return `{
		"type":"endianhex",
		"key":"NumberFieldKey",
		"new":"HexFieldKey",
		"endian":"big"
	}`
}

func (e *EndianHex) ConfigOptions() []Option {
	return []Option{
		transforms.KeyFieldName,
		transforms.KeyFieldNew,
		{
			KeyName:       "endian",
			ChooseOnly:    true,
			ChooseOptions: []interface{}{string(endian.Big), string(endian.Little)},
			Default:       string(endian.DefaultOrder),
			DefaultNoUse:  false,
			Description:   "字节序(endian)",
			Type:          transforms.TransformTypeString,
		},
	}
}

func (e *EndianHex) Stats() StatsInfo {
	return e.stats
}

func init() {
	transforms.Add("endianhex", func() transforms.Transformer {
		return &EndianHex{}
	})
}
