package sheet

import "github.com/zxrxiaoha/checkInRecord/internal/apperr"

var ErrImportFormat = &apperr.Error{
	Message: "the file is not a valid check-in export",
}
