package util

import (
	"encoding/json"
	"fmt"
	"io"
)

func DecodeJSON(r io.Reader, target interface{}) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(target); err != nil {
		return err
	}

	return nil
}

// PanicMessage turns a recovered value into something fit for auth_error.
func PanicMessage(r any) string {
	switch v := r.(type) {
	case error:
		if len(v.Error()) != 0 {
			return v.Error()
		}
	case string:
		if len(v) != 0 {
			return v
		}
	case nil:
	default:
		return fmt.Sprint(v)
	}

	return DefaultErrMessage
}
