package models

// Chart payloads follow the wire contract of the browser charting calls:
// a list of named traces plus layout hints, consumed as-is by Plotly.react.

// Marker carries display styling hints for a trace. Color is either a
// single color string or a per-point color list.
type Marker struct {
	Color any `json:"color,omitempty"`
	Size  int `json:"size,omitempty"`
}

// Line carries line styling hints for a trace
type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Trace is one named series of a chart payload
type Trace struct {
	X      []string  `json:"x"`
	Y      []float64 `json:"y"`
	Type   string    `json:"type"`
	Mode   string    `json:"mode,omitempty"`
	Name   string    `json:"name,omitempty"`
	Fill   string    `json:"fill,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty"`
}

// Axis holds axis layout hints
type Axis struct {
	Title string    `json:"title,omitempty"`
	Range []float64 `json:"range,omitempty"`
}

// Layout holds chart-level layout hints
type Layout struct {
	Title  string `json:"title,omitempty"`
	XAxis  *Axis  `json:"xaxis,omitempty"`
	YAxis  *Axis  `json:"yaxis,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ChartPayload is the complete chart structure sent to the browser. Error
// is set when an analytics operator failed and the chart degraded to an
// empty or partial trace set.
type ChartPayload struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Error  string  `json:"error,omitempty"`
}
