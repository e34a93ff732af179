package mgr

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qiniu/x/log"

	"github.com/qiniu/convkit/conf"
)

var DEFAULT_PORT = 4000

const (
	PREFIX      = "/convkit"
	MetricsPath = "/metrics"
)

type RestService struct {
	mgr     *Manager
	l       net.Listener
	address string
}

func NewRestService(mgr *Manager, router *echo.Echo) *RestService {

	rs := &RestService{
		mgr: mgr,
	}
	//convert API
	router.GET(PREFIX+"/number", rs.GetNumber())
	router.GET(PREFIX+"/date", rs.GetDate())
	router.GET(PREFIX+"/hex", rs.GetHex())

	//transformer API
	router.GET(PREFIX+"/transformer/usages", rs.GetTransformerUsages())
	router.GET(PREFIX+"/transformer/options", rs.GetTransformerOptions())
	router.GET(PREFIX+"/transformer/sampleconfigs", rs.GetTransformerSampleConfigs())
	router.GET(PREFIX+"/transformers", rs.GetTransformers())
	router.PUT(PREFIX+"/transformers", rs.PutTransformers())
	router.POST(PREFIX+"/transform", rs.PostTransform())
	router.GET(PREFIX+"/stats", rs.GetStats())

	//version
	router.GET(PREFIX+"/version", rs.GetVersion())

	router.GET(MetricsPath, echo.WrapHandler(promhttp.HandlerFor(mgr.metrics.registry, promhttp.HandlerOpts{})))

	var (
		port     = DEFAULT_PORT
		address  string
		listener net.Listener
		err      error
	)

	for {
		if port > 10000 {
			log.Fatal("bind port failed too many times, exit...")
		}
		address = ":" + strconv.Itoa(port)
		if mgr.BindHost != "" {
			address = mgr.BindHost
		}
		listener, err = httpserve(address, router)
		if err != nil {
			err = fmt.Errorf("bind address %v for RestService error %v", address, err)
			if mgr.BindHost != "" {
				log.Fatal(err)
			} else {
				log.Warnf("%v, try next port", err)
			}
			port++
			continue
		}
		break
	}
	rs.l = listener
	rs.address = listener.Addr().String()
	log.Infof("successfully start RestService and bind address on %v", rs.address)
	return rs
}

// queryConf 取每个 query 参数的第一个值
func queryConf(c echo.Context) conf.MapConf {
	mc := conf.MapConf{}
	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			mc[k] = v[0]
		}
	}
	return mc
}

func RespError(c echo.Context, statusCode int, errCode, errMsg string) error {
	return c.JSON(statusCode, &ErrorResponse{
		Code:    errCode,
		Message: errMsg,
	})
}

func (rs *RestService) GetVersion() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, &Version{Version: rs.mgr.Version})
	}
}

func (rs *RestService) Address() string {
	return rs.address
}

// Stop will stop RestService
func (rs *RestService) Stop() {
	rs.l.Close()
}

// tcpKeepAliveListener sets TCP keep-alive timeouts on accepted
// connections. It's used by ListenAndServe and ListenAndServeTLS so
// dead TCP connections (e.g. closing laptop mid-download) eventually
// go away.
type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (c net.Conn, err error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return
	}
	tc.SetKeepAlive(true)
	tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

func httpserve(addr string, mux http.Handler) (listener net.Listener, err error) {
	if addr == "" {
		addr = ":http"
	}
	listener, err = net.Listen("tcp", addr)
	if err != nil {
		return
	}

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Errorf("RestService stopped: %v", srv.Serve(tcpKeepAliveListener{listener.(*net.TCPListener)}))
	}()
	return
}
