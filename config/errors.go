package config

import "github.com/zxrxiaoha/checkInRecord/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "invalid value for config option %s: %v",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}
)
