package models

import (
	"fmt"
	"strings"
	"unicode"
)

//通过层级key设置value值.
//当coercive为true时,会强制将非map[string]interface{}类型替换为map[string]interface{}类型,有可能导致数据丢失
func SetMapValue(m map[string]interface{}, val interface{}, coercive bool, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	curr := m
	for _, k := range keys[0 : len(keys)-1] {
		if _, ok := curr[k]; !ok {
			n := make(map[string]interface{})
			curr[k] = n
			curr = n
			continue
		}
		if _, ok := curr[k].(map[string]interface{}); !ok {
			if _, ok := curr[k].(Data); !ok {
				if !coercive {
					return fmt.Errorf("SetMapValue failed, %v is not the type of map[string]interface{}", curr[k])
				}
				curr[k] = make(map[string]interface{})
			}
		}
		if m, ok := curr[k].(Data); ok {
			curr = map[string]interface{}(m)
		} else {
			curr = curr[k].(map[string]interface{})
		}
	}
	curr[keys[len(keys)-1]] = val
	return nil
}

//通过层级key删除key-val,并返回被删除的val,是否删除成功
//如果key不存在,则返回 nil,false
func DeleteMapValue(m map[string]interface{}, keys ...string) (interface{}, bool) {
	var val interface{} = m
	for i, k := range keys {
		if m, ok := val.(Data); ok {
			val = map[string]interface{}(m)
		}
		m, ok := val.(map[string]interface{})
		if !ok {
			return nil, false
		}
		temp, ok := m[k]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			delete(m, k)
			return temp, true
		}
		val = temp
	}
	return nil, false
}

//根据key字符串,拆分出层级keys数据
func GetKeys(keyStr string) []string {
	return strings.FieldsFunc(keyStr, isSeparator)
}

func isSeparator(separator rune) bool {
	return separator == '.' || unicode.IsSpace(separator)
}

//通过层级key获取value.
//所有层级的map必须为 map[string]interface{} 类型.
//keys为空切片,返回原m
func GetMapValue(m map[string]interface{}, keys ...string) (interface{}, error) {
	var val interface{} = m
	for _, k := range keys {
		if m, ok := val.(Data); ok {
			val = map[string]interface{}(m)
		}
		curr, ok := val.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("GetMapValue failed, %v is not the type of map[string]interface{}", val)
		}
		if val, ok = curr[k]; !ok {
			return nil, fmt.Errorf("GetMapValue failed, keys %v are non-existent", keys)
		}
	}
	return val, nil
}

func TruncateStrSize(err string, size int) string {
	if len(err) <= size {
		return err
	}

	return fmt.Sprintf(err[:size]+"......(only show %d bytes, remain %d bytes)",
		size, len(err)-size)
}
