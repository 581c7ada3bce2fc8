package domain

// Instrument is an entry in the FII master catalog. CutoffDay is the
// per-instrument day-of-month used to derive dividend cut-off dates;
// 0 means not configured.
type Instrument struct {
	Ticker    string
	Name      string
	Sector    string
	CutoffDay int
}
