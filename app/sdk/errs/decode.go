package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
)

// NewDecode constructs an InvalidArgument error for a request that could not
// be decoded. Validation errors pass through as they are; decoder errors are
// reduced to a message that names the offending field at most, never the Go
// types behind it.
func NewDecode(err error) *Error {
	if e := GetError(err); e != nil {
		return e
	}

	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     InvalidArgument,
		Message:  decodeMessage(err),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

func decodeMessage(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "Invalid JSON body"
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return "Invalid request body"
		}
		return fmt.Sprintf("Invalid value for %s", typeErr.Field)
	}

	return "Invalid request body"
}
