package conf

import (
	"bytes"
	"errors"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/json-iterator/go"
	"github.com/qiniu/x/log"
)

var (
	confName *string
	NL       = []byte{'\n'}
)

var homeEnvNames = [][]string{
	{"HOME"},
	{"HOMEDRIVE", "HOMEPATH"},
}

var ErrHomeNotFound = errors.New("$HOME not found")

func getEnv(name []string) (v string) {

	if len(name) == 1 {
		return os.Getenv(name[0])
	}
	for _, k := range name {
		v += os.Getenv(k)
	}
	return
}

func GetConfigDir(app string) (dir string, err error) {

	for _, name := range homeEnvNames {
		home := getEnv(name)
		if home == "" {
			continue
		}
		dir = home + "/." + app
		err = os.MkdirAll(dir, 0700)
		return
	}
	return "", ErrHomeNotFound
}

// Init 注册 -cflag 参数，默认配置文件位于 $HOME/.app/default_conf
func Init(cflag, app, default_conf string) {

	confDir, _ := GetConfigDir(app)
	confName = flag.String(cflag, confDir+"/"+default_conf, "the config file")
}

func ConfName() string {
	if confName != nil {
		return *confName
	}
	return ""
}

func Load(conf interface{}) (err error) {

	if !flag.Parsed() {
		flag.Parse()
	}

	log.Infof("Use the config file of %v", *confName)
	return LoadEx(conf, *confName)
}

func trimComments(data []byte) (data1 []byte) {

	conflines := bytes.Split(data, NL)
	for k, line := range conflines {
		conflines[k] = trimCommentsLine(line)
	}
	return bytes.Join(conflines, NL)
}

func trimCommentsLine(line []byte) []byte {

	var newLine []byte
	var i, quoteCount int
	lastIdx := len(line) - 1
	for i = 0; i <= lastIdx; i++ {
		if line[i] == '\\' {
			if i != lastIdx && (line[i+1] == '\\' || line[i+1] == '"') {
				newLine = append(newLine, line[i], line[i+1])
				i++
				continue
			}
		}
		if line[i] == '"' {
			quoteCount++
		}
		if line[i] == '#' {
			if quoteCount%2 == 0 {
				break
			}
		}
		newLine = append(newLine, line[i])
	}
	return newLine
}

// LoadEx 读取配置文件，.toml 后缀按 toml 解析，其余按带 # 注释的 json 解析
func LoadEx(conf interface{}, confName string) (err error) {

	data, err := ioutil.ReadFile(confName)
	if err != nil {
		log.Errorf("Load conf failed: %v", err)
		return
	}
	if isToml(confName) {
		err = toml.Unmarshal(data, conf)
	} else {
		err = jsoniter.Unmarshal(trimComments(data), conf)
	}
	if err != nil {
		log.Errorf("Parse conf failed: %v", err)
	}
	return
}

func LoadData(conf interface{}, data []byte) (err error) {
	data = trimComments(data)

	err = jsoniter.Unmarshal(data, conf)
	if err != nil {
		log.Errorf("Parse conf failed: %v", err)
	}
	return
}

func isToml(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".toml")
}
