package models

import "errors"

var ErrNotExist = errors.New("transformer does not exist")

const (
	// 一切正常
	ErrNothing = "C200"

	// 单个数值转换
	ErrConvertNumber = "C1001"
	ErrConvertDate   = "C1002"
	ErrConvertHex    = "C1003"
	ErrConvertParam  = "C1004"

	// transform 相关
	ErrTransformTransform = "C1301"
	ErrTransformConfig    = "C1302"
)

var ErrorCodeHumanize = map[string]string{
	ErrNothing: "操作成功",

	ErrConvertNumber: "数字解析失败",
	ErrConvertDate:   "时间戳转换日期失败",
	ErrConvertHex:    "整数转换十六进制失败",
	ErrConvertParam:  "请求参数错误",

	ErrTransformTransform: "转化字段失败",
	ErrTransformConfig:    "transformer 配置错误",
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
