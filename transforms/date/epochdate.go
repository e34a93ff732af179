package date

import (
	"errors"

	"github.com/qiniu/convkit/times"
	"github.com/qiniu/convkit/transforms"
	. "github.com/qiniu/convkit/utils/models"
)

var (
	_ transforms.Transformer = &EpochDate{}
	_ transforms.Initializer = &EpochDate{}
)

type EpochDate struct {
	Key         string `json:"key"`
	New         string `json:"new"`
	LayoutAfter string `json:"time_layout_after"`

	keys  []string
	news  []string
	stats StatsInfo
}

func (g *EpochDate) Init() error {
	g.keys = GetKeys(g.Key)
	if len(g.keys) == 0 {
		return errors.New("epochdate transformer key is empty")
	}
	g.news = GetKeys(g.New)
	return nil
}

func (g *EpochDate) Transform(datas []Data) ([]Data, error) {
	if len(g.keys) == 0 {
		if err := g.Init(); err != nil {
			g.stats, _ = transforms.SetStatsInfo(err, g.stats, int64(len(datas)), int64(len(datas)), g.Type())
			return datas, err
		}
	}
	errNum, err := transforms.TransformField(datas, g.Key, g.keys, g.news, func(val interface{}) (interface{}, error) {
		seconds, err := transforms.ToInt64(val)
		if err != nil {
			return nil, err
		}
		return times.EpochToDateFormat(seconds, g.LayoutAfter)
	})

	var fmtErr error
	g.stats, fmtErr = transforms.SetStatsInfo(err, g.stats, int64(errNum), int64(len(datas)), g.Type())
	return datas, fmtErr
}

func (g *EpochDate) Description() string {
	return `将 Unix 时间戳(秒)转换为 UTC 日期, 默认格式为 MM-DD-YYYY, 如 123456789 变为 11-29-1973`
}

func (g *EpochDate) Type() string {
	return "epochdate"
}

func (g *EpochDate) SampleConfig() string {
	return `{
		"type":"epochdate",
		"key":"EpochFieldKey",
		"new":"DateFieldKey",
		"time_layout_after":""
	}`
}

func (g *EpochDate) ConfigOptions() []Option {
	return []Option{
		transforms.KeyFieldName,
		transforms.KeyFieldNew,
		{
			KeyName:      "time_layout_after",
			ChooseOnly:   false,
			Default:      "",
			DefaultNoUse: false,
			Description:  "strftime 格式的日期样式, 不填为 MM-DD-YYYY(time_layout_after)",
			Placeholder:  "%Y-%m-%d %H:%M:%S",
			Type:         transforms.TransformTypeString,
		},
	}
}

func (g *EpochDate) Stats() StatsInfo {
	return g.stats
}

func init() {
	transforms.Add("epochdate", func() transforms.Transformer {
		return &EpochDate{}
	})
}
