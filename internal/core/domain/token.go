package domain

import "errors"

// Token validation failures are distinct cases: an expired token is a
// recoverable condition the client fixes by logging in again, while a bad
// signature is a suspicious event worth logging. Both reject with 401.
var ErrTokenMissing = errors.New("token missing")
var ErrTokenInvalid = errors.New("token invalid")
var ErrTokenExpired = errors.New("token expired")
