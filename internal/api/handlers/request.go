package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody возвращается, если тело запроса пустое
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrInvalidJSON возвращается, если тело запроса не является корректным JSON
	ErrInvalidJSON = errors.New("handlers: invalid json")
)

// DecodeJSON декодирует тело запроса в v.
// После JSON-объекта в теле не должно быть других данных.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after json object", ErrInvalidJSON)
	}

	return nil
}
