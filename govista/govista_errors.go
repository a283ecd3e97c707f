package govista

import "errors"

// ErrSessionExpired is returned for any 401 response after the stored
// credentials have been cleared; callers redirect to login.
var ErrSessionExpired = errors.New("session expired")

var ErrMissingClientSecret = errors.New("failed to create payment intent")

var ErrUnexpectedResponse = errors.New("unexpected response from API")
