package engine

import (
	"unicode/utf8"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
)

// DecodeOutput turns a Response into text.
//
// A failed Response yields an apperrors.ExecutionError and its Output is not
// inspected. Output that is not valid UTF-8 yields an apperrors.DecodeError;
// bytes are never replaced, since the text is compared byte-for-byte.
func DecodeOutput(engineName string, resp Response) (string, error) {
	if !resp.Succeeded() {
		return "", apperrors.ExecutionError{Engine: engineName, Status: resp.Status}
	}
	if off := invalidUTF8Offset(resp.Output); off >= 0 {
		return "", apperrors.DecodeError{Offset: off, Length: len(resp.Output)}
	}
	return string(resp.Output), nil
}

// invalidUTF8Offset returns the offset of the first invalid sequence in b,
// or -1 if b is valid UTF-8.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
