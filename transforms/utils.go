package transforms

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/json-iterator/go"

	"github.com/qiniu/convkit/number"
	. "github.com/qiniu/convkit/utils/models"
)

var ErrNotInteger = errors.New("value is not an integer")

// ConvertFunc 把字段原值转换为新值，返回错误时数据保持原样
type ConvertFunc func(val interface{}) (interface{}, error)

// TransformField 对每条数据 keys 指向的字段做 convert，结果写入 news，news 为空时覆盖原字段
func TransformField(datas []Data, key string, keys, news []string, convert ConvertFunc) (errNum int, err error) {
	if len(news) == 0 {
		news = keys
	}
	for i := range datas {
		val, getErr := GetMapValue(datas[i], keys...)
		if getErr != nil {
			errNum, err = SetError(errNum, getErr, GetErr, key)
			continue
		}
		newVal, convertErr := convert(val)
		if convertErr != nil {
			errNum, err = SetError(errNum, fmt.Errorf("transform key %v: %v", key, convertErr), General, "")
			continue
		}
		setErr := SetMapValue(datas[i], newVal, false, news...)
		if setErr != nil {
			errNum, err = SetError(errNum, setErr, SetErr, key)
		}
	}
	return errNum, err
}

// ToInt64 接受各种整数类型、整数值的浮点数以及可被 number.Parse 解析为整数的字符串
func ToInt64(val interface{}) (int64, error) {
	switch v := val.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint:
		return uintToInt64(uint64(v))
	case uint64:
		return uintToInt64(v)
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case json.Number:
		return stringToInt64(string(v))
	case string:
		return stringToInt64(v)
	}
	return 0, fmt.Errorf("%w: unsupported type %T", ErrNotInteger, val)
}

func uintToInt64(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v overflows int64", ErrNotInteger, u)
	}
	return int64(u), nil
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}
	return int64(f), nil
}

func stringToInt64(s string) (int64, error) {
	n, err := number.Parse(s)
	if err != nil {
		return 0, err
	}
	if n.Kind != number.Integer {
		return floatToInt64(n.Float)
	}
	return n.Int, nil
}

// Create 根据 type 找到对应的 Creator，通过 json 把配置填充到 transformer 中并初始化
func Create(tConf map[string]interface{}) (Transformer, error) {
	tp := tConf[KeyType]
	if tp == nil {
		return nil, fmt.Errorf("transformer config type is empty %v", tConf)
	}
	strTP, ok := tp.(string)
	if !ok {
		return nil, fmt.Errorf("transformer config field type %v is not string", tp)
	}
	creater, ok := Transformers[strTP]
	if !ok {
		return nil, fmt.Errorf("transformer type %v: %w", strTP, ErrNotExist)
	}
	trans := creater()
	bts, err := jsoniter.Marshal(tConf)
	if err != nil {
		return nil, fmt.Errorf("type %v of transformer marshal config error %v", strTP, err)
	}
	err = jsoniter.Unmarshal(bts, trans)
	if err != nil {
		return nil, fmt.Errorf("type %v of transformer unmarshal config error %v", strTP, err)
	}
	//transformer初始化
	if trans, ok := trans.(Initializer); ok {
		err = trans.Init()
		if err != nil {
			return nil, fmt.Errorf("type %v of transformer init error %v", strTP, err)
		}
	}
	return trans, nil
}
