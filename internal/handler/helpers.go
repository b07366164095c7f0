package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ChristianALins/cliver-seguros/internal/apierror"
	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// respondError translates a domain error kind into the HTTP status the API
// contract promises. Anything unclassified is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	var de *domainerr.Error
	if !errors.As(err, &de) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
		return
	}

	var status int
	switch de.Kind {
	case domainerr.KindInvalidArgument:
		status = http.StatusBadRequest
	case domainerr.KindNotFound:
		status = http.StatusNotFound
	case domainerr.KindForbidden:
		status = http.StatusForbidden
	case domainerr.KindAlreadyRenewed,
		domainerr.KindDuplicatePolicyNumber,
		domainerr.KindDuplicate,
		domainerr.KindHasDependents:
		status = http.StatusConflict
	case domainerr.KindStorageUnavailable:
		_ = c.Error(err)
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
	}
	c.JSON(status, apierror.NewKinded(string(de.Kind), de.Campo, de.Msg))
}
