package mgr

import (
	. "github.com/qiniu/convkit/utils/models"
)

type Version struct {
	Version string `json:"version"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TransformStatus 单个 transformer 的运行状态
type TransformStatus struct {
	Type  string    `json:"type"`
	Stats StatsInfo `json:"stats"`
}

type NumberResult struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
	Text  string      `json:"text"`
}

type DateResult struct {
	Seconds int64  `json:"seconds"`
	Date    string `json:"date"`
}

type HexResult struct {
	Num    int64  `json:"num"`
	Endian string `json:"endian"`
	Hex    string `json:"hex"`
}

type TransformResult struct {
	Datas []Data `json:"datas"`
	Error string `json:"error,omitempty"`
}
