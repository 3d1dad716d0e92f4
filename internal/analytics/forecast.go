package analytics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// MinForecastPoints is the minimum series length the forecaster accepts.
// Shorter series cannot support an ARIMA(1,1,1) fit and are rejected up
// front instead of diverging inside the optimizer.
const MinForecastPoints = 10

// ForecastYield fits an ARIMA(1,1,1) model to the yield series and projects
// horizon steps beyond the last observation. Horizon zero yields an empty
// sequence. The fit minimizes the conditional sum of squares of the
// differenced series with Nelder-Mead.
func ForecastYield(series []float64, horizon int) ([]float64, error) {
	if horizon <= 0 {
		return []float64{}, nil
	}
	if len(series) < MinForecastPoints {
		return nil, fmt.Errorf("%w: need at least %d points, got %d",
			ErrForecastUnavailable, MinForecastPoints, len(series))
	}

	diff := difference(series)
	if isDegenerate(diff) {
		return nil, fmt.Errorf("%w: series is near-constant", ErrForecastUnavailable)
	}
	phi, theta, err := fitARMA11(diff)
	if err != nil {
		return nil, err
	}

	// Residuals of the fitted model, needed to seed the MA term
	residuals := arma11Residuals(diff, phi, theta)

	forecast := make([]float64, horizon)
	level := series[len(series)-1]
	prevDiff := diff[len(diff)-1]
	prevErr := residuals[len(residuals)-1]

	for h := 0; h < horizon; h++ {
		step := phi*prevDiff + theta*prevErr
		level += step
		forecast[h] = level

		prevDiff = step
		prevErr = 0 // future shocks have zero expectation
	}
	return forecast, nil
}

// fitARMA11 estimates AR and MA coefficients for the differenced series by
// conditional sum of squares.
func fitARMA11(diff []float64) (phi, theta float64, err error) {
	css := func(x []float64) float64 {
		p, q := x[0], x[1]
		if math.Abs(p) >= 1 || math.Abs(q) >= 1 {
			return math.Inf(1)
		}
		residuals := arma11Residuals(diff, p, q)
		var sum float64
		for _, e := range residuals {
			sum += e * e
		}
		return sum
	}

	problem := optimize.Problem{Func: css}
	result, optErr := optimize.Minimize(problem, []float64{0.1, 0.1}, nil, &optimize.NelderMead{})
	if optErr != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrForecastUnavailable, optErr)
	}

	phi, theta = result.X[0], result.X[1]
	if math.IsNaN(phi) || math.IsNaN(theta) ||
		math.Abs(phi) >= 1 || math.Abs(theta) >= 1 ||
		math.IsInf(result.F, 0) || math.IsNaN(result.F) {
		return 0, 0, fmt.Errorf("%w: fit did not converge", ErrForecastUnavailable)
	}
	return phi, theta, nil
}

// arma11Residuals computes conditional one-step errors of an ARMA(1,1)
// model on the differenced series, with the pre-sample error fixed at zero.
func arma11Residuals(diff []float64, phi, theta float64) []float64 {
	residuals := make([]float64, len(diff))
	residuals[0] = 0
	for t := 1; t < len(diff); t++ {
		predicted := phi*diff[t-1] + theta*residuals[t-1]
		residuals[t] = diff[t] - predicted
	}
	return residuals
}

// isDegenerate reports whether the differenced series carries no usable
// signal for the optimizer.
func isDegenerate(diff []float64) bool {
	for _, d := range diff {
		if math.Abs(d) > 1e-9 {
			return false
		}
	}
	return true
}

func difference(series []float64) []float64 {
	diff := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		diff[i-1] = series[i] - series[i-1]
	}
	return diff
}
