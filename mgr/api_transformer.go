package mgr

import (
	"io/ioutil"
	"net/http"

	"github.com/json-iterator/go"
	"github.com/labstack/echo"

	"github.com/qiniu/convkit/conf"
	"github.com/qiniu/convkit/transforms"
	. "github.com/qiniu/convkit/utils/models"
)

// 保留数字原样，交给 transformer 自己判断类型
var dataJSON = jsoniter.Config{UseNumber: true}.Froze()

// GET /convkit/transformer/usages
func (rs *RestService) GetTransformerUsages() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, transforms.GetTransformerUsages())
	}
}

//GET /convkit/transformer/options
func (rs *RestService) GetTransformerOptions() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, transforms.GetTransformerOptions())
	}
}

//GET /convkit/transformer/sampleconfigs
func (rs *RestService) GetTransformerSampleConfigs() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, transforms.GetTransformerSampleConfigs())
	}
}

// GET /convkit/transformers
func (rs *RestService) GetTransformers() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, rs.mgr.TransformConfigs())
	}
}

// PUT /convkit/transformers
func (rs *RestService) PutTransformers() echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := ioutil.ReadAll(c.Request().Body)
		if err != nil {
			return RespError(c, http.StatusBadRequest, ErrTransformConfig, err.Error())
		}
		var confs []map[string]interface{}
		if err = conf.LoadData(&confs, body); err != nil {
			return RespError(c, http.StatusBadRequest, ErrTransformConfig, err.Error())
		}
		if err = rs.mgr.SetTransforms(confs); err != nil {
			return RespError(c, http.StatusBadRequest, ErrTransformConfig, err.Error())
		}
		return c.JSON(http.StatusOK, rs.mgr.Status())
	}
}

// POST /convkit/transform
func (rs *RestService) PostTransform() echo.HandlerFunc {
	return func(c echo.Context) error {
		var datas []Data
		if err := dataJSON.NewDecoder(c.Request().Body).Decode(&datas); err != nil {
			return RespError(c, http.StatusBadRequest, ErrTransformTransform, err.Error())
		}
		datas, err := rs.mgr.Transform(datas)
		ret := &TransformResult{Datas: datas}
		if err != nil {
			ret.Error = err.Error()
		}
		return c.JSON(http.StatusOK, ret)
	}
}

// GET /convkit/stats
func (rs *RestService) GetStats() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, rs.mgr.Status())
	}
}
