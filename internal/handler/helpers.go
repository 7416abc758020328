package handler

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"dealerdesk/internal/apierror"
	"dealerdesk/internal/upstream"
)

var validate = validator.New()

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

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

	// Indian PAN format: five letters, four digits, one letter.
	_ = validate.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return panPattern.MatchString(fl.Field().String())
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
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

// bindQuery binds and validates query parameters the same way.
func bindQuery(c *gin.Context, q interface{}) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return false
	}
	if err := validate.Struct(q); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return id, true
}

// upstreamError translates remote API failures into console responses. The
// upstream error text never reaches the client verbatim; the one exception,
// registration, intercepts StatusError before falling back here.
func upstreamError(c *gin.Context, err error) {
	switch {
	case upstream.IsNotFound(err):
		c.JSON(http.StatusNotFound, apierror.New("not found"))
	case errors.Is(err, upstream.ErrCircuitOpen):
		c.JSON(http.StatusServiceUnavailable, apierror.New("financing service temporarily unavailable"))
	default:
		var malformed *upstream.MalformedResponseError
		if errors.As(err, &malformed) {
			c.JSON(http.StatusBadGateway, apierror.New("financing service returned an invalid response"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("financing service request failed"))
	}
}
