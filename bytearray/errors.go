package bytearray

import "errors"

// ErrDecode is returned when a hex, base64 or UTF-8 conversion is given
// malformed input. All decode failures in this package wrap it.
var ErrDecode = errors.New("decoding failed")
