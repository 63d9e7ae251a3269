package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"masterneo/internal/domain/experiences"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// init registers the custom tags used by request payloads:
//   - timezone: an IANA zone name time.LoadLocation understands
//   - monthdate: "YYYY-MM" (a full "YYYY-MM-DD" is accepted and truncated)
func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	Validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		if tz == "" || strings.EqualFold(tz, "local") {
			return false
		}
		_, err := time.LoadLocation(tz)
		return err == nil
	})

	Validate.RegisterValidation("monthdate", func(fl validator.FieldLevel) bool {
		_, err := experiences.ParseMonth(fl.Field().String())
		return err == nil
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(data); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}

// decodeAndValidate reads a JSON body into payload and runs the validator
// tags on it.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, payload any) error {
	if err := readJSON(w, r, payload); err != nil {
		return err
	}
	if err := Validate.Struct(payload); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError flattens validator errors into one readable message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param()))
		case "timezone":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid IANA timezone", field))
		case "monthdate":
			msgs = append(msgs, fmt.Sprintf("%s must be formatted as YYYY-MM", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// parseIDParam reads a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// optionalIDQuery reads an optional positive integer query parameter.
func optionalIDQuery(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &id, nil
}
