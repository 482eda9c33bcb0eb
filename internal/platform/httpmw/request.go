package httpmw

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/packing-checklist/pkg/apperrors"
)

const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst, rejecting unknown fields and trailing data
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.New(apperrors.KindInvalidInput, "http.DecodeJSON", fmt.Sprintf("invalid request body: %v", err))
	}
	if dec.More() {
		return apperrors.New(apperrors.KindInvalidInput, "http.DecodeJSON", "invalid request body: trailing data")
	}
	return nil
}

// PathID parses a positive numeric route variable
func PathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.New(apperrors.KindInvalidInput, "http.PathID", fmt.Sprintf("invalid %s", name))
	}
	return uint(id), nil
}
