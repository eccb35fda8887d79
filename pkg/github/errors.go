package github

import "errors"

// ErrNoProfile is returned when the upstream lookup does not resolve to a
// GitHub profile (any non-200 response, including rate limiting).
var ErrNoProfile = errors.New("github: no profile found")
