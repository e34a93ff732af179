package main

import (
	"net/http"
	_ "net/http/pprof"
	"runtime"

	"github.com/labstack/echo"
	"github.com/qiniu/x/log"

	config "github.com/qiniu/convkit/conf"
	"github.com/qiniu/convkit/mgr"
	_ "github.com/qiniu/convkit/transforms/all"
	utilsos "github.com/qiniu/convkit/utils/os"
)

//Config of convkit
type Config struct {
	MaxProcs    int    `json:"max_procs" toml:"max_procs"`
	DebugLevel  int    `json:"debug_level" toml:"debug_level"`
	ProfileHost string `json:"profile_host" toml:"profile_host"`
	mgr.ManagerConfig
}

var conf Config

const (
	Version = "v0.1.0"
)

func main() {
	config.Init("f", "convkit", "convkit.conf")
	if err := config.Load(&conf); err != nil {
		log.Fatal("config.Load failed:", err)
	}
	log.Printf("Welcome to use Convkit, Version: %v \n\nConfig: %#v", Version, conf)
	if conf.MaxProcs == 0 {
		conf.MaxProcs = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(conf.MaxProcs)
	log.SetOutputLevel(conf.DebugLevel)

	m, err := mgr.NewManager(conf.ManagerConfig)
	if err != nil {
		log.Fatalf("NewManager: %v", err)
	}
	m.Version = Version

	e := echo.New()
	rs := mgr.NewRestService(m, e)
	if conf.ProfileHost != "" {
		log.Printf("profile_host was open at %v", conf.ProfileHost)
		go func() {
			log.Println(http.ListenAndServe(conf.ProfileHost, nil))
		}()
	}
	utilsos.WaitForInterrupt(func() {
		rs.Stop()
	})
}
