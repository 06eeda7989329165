package stats

import "errors"

var ErrPermissionDenied = errors.New("permission denied")
