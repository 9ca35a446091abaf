package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ErrorRecordInUse signals a referential-integrity conflict on delete
// (e.g. a client that still owns vehicles). Maps to 409 at the HTTP layer.
var ErrorRecordInUse = errors.New("record is still referenced")
