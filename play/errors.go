package play

import "errors"

var errUnknownBackend = errors.New("unknown backend")
