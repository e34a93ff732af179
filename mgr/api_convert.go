package mgr

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/qiniu/convkit/endian"
	"github.com/qiniu/convkit/number"
	"github.com/qiniu/convkit/times"
	. "github.com/qiniu/convkit/utils/models"
)

// GET /convkit/number?value=<string>
func (rs *RestService) GetNumber() echo.HandlerFunc {
	return func(c echo.Context) error {
		value, err := queryConf(c).GetString("value")
		if err != nil {
			return RespError(c, http.StatusBadRequest, ErrConvertParam, err.Error())
		}
		n, err := number.Parse(value)
		rs.mgr.metrics.observeConvert("number", err)
		if err != nil {
			return RespError(c, http.StatusBadRequest, ErrConvertNumber, err.Error())
		}
		return c.JSON(http.StatusOK, &NumberResult{
			Type:  n.Kind.String(),
			Value: n.Value(),
			Text:  n.String(),
		})
	}
}

// GET /convkit/date?seconds=<int>&layout=<strftime>
func (rs *RestService) GetDate() echo.HandlerFunc {
	return func(c echo.Context) error {
		mc := queryConf(c)
		seconds, err := mc.GetInt64("seconds")
		if err != nil {
			return RespError(c, http.StatusBadRequest, ErrConvertParam, err.Error())
		}
		layout, _ := mc.GetStringOr("layout", "")
		date, err := times.EpochToDateFormat(seconds, layout)
		rs.mgr.metrics.observeConvert("date", err)
		if err != nil {
			return RespError(c, http.StatusBadRequest, ErrConvertDate, err.Error())
		}
		return c.JSON(http.StatusOK, &DateResult{Seconds: seconds, Date: date})
	}
}

// GET /convkit/hex?num=<int>&endian=big|little
func (rs *RestService) GetHex() echo.HandlerFunc {
	return func(c echo.Context) error {
		mc := queryConf(c)
		num, err := mc.GetInt64("num")
		if err != nil {
			return RespError(c, http.StatusBadRequest, ErrConvertParam, err.Error())
		}
		e, _ := mc.GetStringOr("endian", string(endian.DefaultOrder))
		hex, err := endian.ToHex(num, e)
		rs.mgr.metrics.observeConvert("hex", err)
		if err != nil {
			return RespError(c, http.StatusBadRequest, ErrConvertHex, err.Error())
		}
		return c.JSON(http.StatusOK, &HexResult{Num: num, Endian: e, Hex: hex})
	}
}
