package service

import "time"

// ReportParams is one calculation request as the transport layer hands it
// over: raw composition in mol%, gauge pressure, Celsius temperature and an
// optional solver strategy ("cubic" | "empirical"; empty selects cubic).
type ReportParams struct {
	Composition     map[string]float64
	PressureBarg    float64
	TemperatureDegC float64
	Strategy        string
}

// HistoryFilter narrows stored-calculation queries by time range and solver
// strategy.
type HistoryFilter struct {
	From     time.Time // inclusive; zero means no lower bound
	To       time.Time // inclusive; zero means no upper bound
	Strategy string    // "", "cubic", "empirical"
}
