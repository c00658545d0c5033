package v1

import "github.com/samiksome92/crc32/internals"

type Record = internals.Record
type Outcome = internals.Outcome
type Status = internals.Status
type CreateOptions = internals.CreateOptions
type CreateResult = internals.CreateResult
type FormatError = internals.FormatError

const (
	StatusOK       = internals.StatusOK
	StatusMismatch = internals.StatusMismatch
	StatusError    = internals.StatusError
)
