package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/validators"
)

var paramValidator = validators.New()

type statusRangeParams struct {
	Low  int `param:"low" validate:"gte=0,lte=999"`
	High int `param:"high" validate:"gte=0,lte=999"`
}

// thresholdParams accepts any integer: a negative threshold matches every record.
type thresholdParams struct {
	Threshold int `param:"threshold"`
}

type dateRangeParams struct {
	Start string `param:"start" validate:"required,datetime=2006-01-02"`
	End   string `param:"end" validate:"required,datetime=2006-01-02"`
}

type dayParams struct {
	Day string `param:"day" validate:"required,len=6"`
}

func bindStatusRange(r *http.Request) (statusRangeParams, error) {
	var params statusRangeParams
	var err error
	if params.Low, err = intParam(r, "low"); err != nil {
		return params, err
	}
	if params.High, err = intParam(r, "high"); err != nil {
		return params, err
	}
	return params, validateParams(&params)
}

func bindThreshold(r *http.Request) (thresholdParams, error) {
	var params thresholdParams
	var err error
	if params.Threshold, err = intParam(r, "threshold"); err != nil {
		return params, err
	}
	return params, validateParams(&params)
}

func bindDateRange(r *http.Request) (dateRangeParams, error) {
	params := dateRangeParams{
		Start: strings.TrimSpace(r.URL.Query().Get("start")),
		End:   strings.TrimSpace(r.URL.Query().Get("end")),
	}
	return params, validateParams(&params)
}

// bindDay reads a "Mon DD" day key, e.g. day=Sep%2014.
func bindDay(r *http.Request) (models.DayKey, error) {
	params := dayParams{Day: r.URL.Query().Get("day")}
	if err := validateParams(&params); err != nil {
		return "", err
	}
	day, err := models.ParseDayKey(params.Day)
	if err != nil {
		return "", errInvalidQueryParams(fmt.Sprintf("invalid day %q: expected format \"Mon DD\"", params.Day), err)
	}
	return day, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, errInvalidQueryParams(fmt.Sprintf("%s is required", name), nil)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQueryParams(fmt.Sprintf("%s must be an integer", name), err)
	}
	return value, nil
}

func validateParams(params any) error {
	err := paramValidator.Struct(params)
	if err == nil {
		return nil
	}
	var validationErrors validators.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errInvalidQueryParams("invalid query parameters", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatParamError(e))
	}
	return errInvalidQueryParams(strings.Join(messages, ", "), err)
}

func formatParamError(e validators.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}
