package store

import "github.com/zxrxiaoha/checkInRecord/internal/apperr"

var (
	ErrNotFound = &apperr.Error{
		Message: "no record found with the specified id",
	}

	ErrPersistence = &apperr.Error{
		Message: "the data store operation failed",
	}

	errAlreadyOpen = &apperr.Error{
		Message: "is checkin already running? Only one instance can be active at a time",
	}
)
