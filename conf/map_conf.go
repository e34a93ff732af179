package conf

import (
	"fmt"
	"strconv"
)

// conf types
const (
	StringType = "string"
	Int64Type  = "int64"
)

// MapConf 基于Map的配置信息
type MapConf map[string]string

func ErrConfMissingKey(key, dataType string) error {
	return fmt.Errorf("MissingKey: The configs must contains %s, dataType must be %s", key, dataType)
}

func ErrConfKeyType(key, dataType string) error {
	return fmt.Errorf("TypeError: The configs must contains %s, dataType must be %s", key, dataType)
}

func (conf MapConf) GetStringOr(key string, deft string) (string, error) {
	ret, err := conf.GetString(key)
	if err != nil || ret == "" {
		return deft, err
	}
	return ret, err
}

func (conf MapConf) GetString(key string) (string, error) {
	value, exist := conf[key]
	if !exist {
		return "", ErrConfMissingKey(key, StringType)
	}
	return value, nil
}

func (conf MapConf) GetInt64(key string) (int64, error) {
	value, exist := conf[key]
	if !exist {
		return 0, ErrConfMissingKey(key, Int64Type)
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, ErrConfKeyType(key, Int64Type)
	}
	return v, nil
}
