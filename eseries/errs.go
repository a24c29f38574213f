package eseries

import "github.com/zeebo/errs"

// Error classes. Use Class.Has to test an error's kind.
var (
	// InvalidInput is a construction-time failure (bad mantissa list).
	InvalidInput = errs.Class("invalid input")

	// UnknownSeries is returned for keys other than 6, 12, 24, 48, 96 and
	// 192.
	UnknownSeries = errs.Class("unknown series")

	// DomainError is returned for non-positive or non-finite values.
	DomainError = errs.Class("domain error")

	// InvalidRange is returned by FromTo for empty or non-positive ranges.
	InvalidRange = errs.Class("invalid range")
)
