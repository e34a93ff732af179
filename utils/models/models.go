package models

const (
	ContentTypeHeader = "Content-Type"
	ApplicationJson   = "application/json"

	// StatsInfo.LastError 最多保留的字节数
	DefaultErrorSize = 1024
)

type Option struct {
	KeyName       string
	ChooseOnly    bool
	ChooseOptions []interface{}
	Default       interface{}
	DefaultNoUse  bool
	Description   string
	CheckRegex    string
	Style         string `json:"style"`
	Required      bool   `json:"required"`
	Placeholder   string `json:"placeholder"`
	Type          string `json:"Type,omitempty"`
	Advance       bool   `json:"advance,omitempty"`
	ToolTip       string `json:"tooltip,omitempty"`
}

type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Data store as use key/value map
type Data map[string]interface{}

type StatsInfo struct {
	Errors    int64  `json:"errors"`
	Success   int64  `json:"success"`
	LastError string `json:"last_error"`
}
