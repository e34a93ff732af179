package transforms

import (
	. "github.com/qiniu/convkit/utils/models"
)

const (
	KeyType = "type"
)

const (
	TransformTypeString = "string"
	TransformTypeLong   = "long"
)

//Transformer plugin做数据变换的接口
// 注意： transform的规则是，出错要把数据原样返回
type Transformer interface {
	Description() string
	SampleConfig() string
	ConfigOptions() []Option
	Type() string
	Transform([]Data) ([]Data, error)
	Stats() StatsInfo
}

//transformer初始化方法接口,err不为空表示初始化失败
type Initializer interface {
	Init() error
}

type Creator func() Transformer

var Transformers = map[string]Creator{}

func Add(name string, creator Creator) {
	Transformers[name] = creator
}

var (
	KeyFieldName = Option{
		KeyName:      "key",
		ChooseOnly:   false,
		Default:      "",
		Required:     true,
		Placeholder:  "my_field_keyname",
		DefaultNoUse: true,
		Description:  "要进行Transform变化的键(key)",
		Type:         TransformTypeString,
	}
	KeyFieldNew = Option{
		KeyName:      "new",
		ChooseOnly:   false,
		Default:      "",
		Required:     false,
		Placeholder:  "new_field_keyname",
		DefaultNoUse: false,
		Description:  "转换结果写入的新字段名，不填则覆盖原字段(new)",
		Type:         TransformTypeString,
	}
)
