package mgr

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/json-iterator/go"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/qiniu/convkit/transforms/all"
	. "github.com/qiniu/convkit/utils/models"
)

func newTestRestService(t *testing.T, conf ManagerConfig) (*RestService, *echo.Echo) {
	conf.BindHost = "127.0.0.1:0"
	m, err := NewManager(conf)
	require.NoError(t, err)
	m.Version = "test"
	e := echo.New()
	rs := NewRestService(m, e)
	return rs, e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(ContentTypeHeader, ApplicationJson)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestConvertAPI(t *testing.T) {
	rs, e := newTestRestService(t, ManagerConfig{})
	defer rs.Stop()

	rec := doRequest(e, http.MethodGet, "/convkit/number?value=-0xAD4", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var num NumberResult
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &num))
	assert.Equal(t, "integer", num.Type)
	assert.Equal(t, float64(-2772), num.Value)
	assert.Equal(t, "-2772", num.Text)

	rec = doRequest(e, http.MethodGet, "/convkit/number?value=123.", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &num))
	assert.Equal(t, "float", num.Type)
	assert.Equal(t, "123.0", num.Text)

	rec = doRequest(e, http.MethodGet, "/convkit/number?value=12.3.45", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp ErrorResponse
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, ErrConvertNumber, errResp.Code)

	rec = doRequest(e, http.MethodGet, "/convkit/number", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, ErrConvertParam, errResp.Code)

	rec = doRequest(e, http.MethodGet, "/convkit/date?seconds=9876543210", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var date DateResult
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &date))
	assert.Equal(t, DateResult{Seconds: 9876543210, Date: "12-22-2282"}, date)

	rec = doRequest(e, http.MethodGet, "/convkit/date?seconds=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, ErrConvertDate, errResp.Code)

	rec = doRequest(e, http.MethodGet, "/convkit/hex?num=954786", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var hex HexResult
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &hex))
	assert.Equal(t, HexResult{Num: 954786, Endian: "big", Hex: "0E 91 A2"}, hex)

	rec = doRequest(e, http.MethodGet, "/convkit/hex?num=954786&endian=little", "")
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &hex))
	assert.Equal(t, "A2 91 0E", hex.Hex)

	rec = doRequest(e, http.MethodGet, "/convkit/hex?num=954786&endian=small", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, ErrConvertHex, errResp.Code)

	rec = doRequest(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `convkit_convert_requests_total{op="hex",result="error"} 1`)
	assert.Contains(t, rec.Body.String(), `convkit_convert_requests_total{op="number",result="ok"} 2`)
}

func TestTransformerAPI(t *testing.T) {
	rs, e := newTestRestService(t, ManagerConfig{
		Transforms: []map[string]interface{}{
			{"type": "convnum", "key": "num"},
			{"type": "epochdate", "key": "ts", "new": "date"},
		},
	})
	defer rs.Stop()

	rec := doRequest(e, http.MethodGet, "/convkit/transformer/usages", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var usages []KeyValue
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &usages))
	assert.Len(t, usages, 3)

	rec = doRequest(e, http.MethodGet, "/convkit/transformer/options", "")
	var options map[string][]Option
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &options))
	assert.Len(t, options["endianhex"], 3)

	rec = doRequest(e, http.MethodGet, "/convkit/transformer/sampleconfigs", "")
	var samples map[string]string
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &samples))
	assert.Contains(t, samples["epochdate"], `"type":"epochdate"`)

	rec = doRequest(e, http.MethodPost, "/convkit/transform", `[{"num":"0xAD4","ts":123456789},{"num":"bad","ts":0}]`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var ret TransformResult
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &ret))
	assert.NotEmpty(t, ret.Error)
	require.Len(t, ret.Datas, 2)
	assert.Equal(t, float64(2772), ret.Datas[0]["num"])
	assert.Equal(t, "11-29-1973", ret.Datas[0]["date"])
	assert.Equal(t, "bad", ret.Datas[1]["num"])
	assert.Equal(t, "01-01-1970", ret.Datas[1]["date"])

	rec = doRequest(e, http.MethodGet, "/convkit/stats", "")
	var status []TransformStatus
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, []TransformStatus{
		{Type: "convnum", Stats: StatsInfo{Success: 1, Errors: 1, LastError: status[0].Stats.LastError}},
		{Type: "epochdate", Stats: StatsInfo{Success: 2}},
	}, status)

	rec = doRequest(e, http.MethodPut, "/convkit/transformers", `[
		# 小端输出
		{"type": "endianhex", "key": "num", "endian": "little"}
	]`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/convkit/transform", `[{"num":954786}]`)
	ret = TransformResult{}
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &ret))
	assert.Empty(t, ret.Error)
	assert.Equal(t, "A2 91 0E", ret.Datas[0]["num"])

	rec = doRequest(e, http.MethodPut, "/convkit/transformers", `[{"type": "endianhex", "key": "num", "endian": "small"}]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doRequest(e, http.MethodPut, "/convkit/transformers", `[{"type": "nothing"}]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/convkit/transformers", "")
	var confs []map[string]interface{}
	assert.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &confs))
	assert.Equal(t, []map[string]interface{}{{"type": "endianhex", "key": "num", "endian": "little"}}, confs)

	rec = doRequest(e, http.MethodPost, "/convkit/transform", `{"num":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(), `convkit_transform_errors_total{type="convnum"} 1`)
	assert.Contains(t, rec.Body.String(), `convkit_transform_success_total{type="epochdate"} 2`)
}

func TestVersionAndServe(t *testing.T) {
	rs, _ := newTestRestService(t, ManagerConfig{})
	defer rs.Stop()

	resp, err := http.Get("http://" + rs.Address() + "/convkit/version")
	require.NoError(t, err)
	defer resp.Body.Close()
	content, _ := ioutil.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var v Version
	assert.NoError(t, jsoniter.Unmarshal(content, &v))
	assert.Equal(t, "test", v.Version)
}

func TestNewManagerBadConfig(t *testing.T) {
	_, err := NewManager(ManagerConfig{Transforms: []map[string]interface{}{{"type": "convnum"}}})
	assert.Error(t, err)
}
