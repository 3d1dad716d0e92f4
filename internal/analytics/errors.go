package analytics

import "errors"

var (
	// ErrEmptyDataset is returned when an operator receives zero rows.
	// Callers degrade to empty collections rather than failing the request.
	ErrEmptyDataset = errors.New("analytics: empty dataset")

	// ErrForecastUnavailable is returned when the forecast model cannot be
	// fitted: the series is too short, degenerate, or the fit diverges.
	ErrForecastUnavailable = errors.New("analytics: forecast unavailable")
)
