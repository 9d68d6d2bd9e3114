package utils

import (
	"io"
	"net/http"

	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// DecodeAndValidate parses a JSON request body into dst and runs the shared
// validator over it. dst must be a pointer to a request DTO.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := Validate.Struct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
