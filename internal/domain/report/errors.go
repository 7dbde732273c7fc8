package report

import "errors"

var (
	ErrReportNotFound = errors.New("workload report not found")
	ErrInvalidLevel   = errors.New("workload level must be between 1 and 5")
)
