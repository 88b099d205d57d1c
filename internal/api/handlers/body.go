package handlers

import (
	"encoding/json"
	"errors"
)

// isTypeError reports whether err is a JSON decode failure caused by field
// carrying the wrong type, e.g. a string quantity.
func isTypeError(err error, field string) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr) && typeErr.Field == field
}
