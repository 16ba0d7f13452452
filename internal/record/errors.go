package record

import "github.com/zxrxiaoha/checkInRecord/internal/apperr"

var ErrInvalidInterval = &apperr.Error{
	Message: "the end time must be after the start time",
}
