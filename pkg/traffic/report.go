package traffic

// BytesPerGB is the divisor used to convert raw byte counts into gigabytes.
const BytesPerGB = 1 << 30

// GBFromBytes converts a raw byte count into gigabytes.
func GBFromBytes(bytes int64) float64 {
	return float64(bytes) / BytesPerGB
}

// Report is the result of comparing measured traffic against the configured
// threshold. It is built once and never mutated.
type Report struct {
	MeasuredGB  float64 `json:"measured_gb"`
	ThresholdGB float64 `json:"threshold_gb"`
	Exceeded    bool    `json:"exceeded"`
}

// Evaluate compares measured traffic against a threshold. The comparison is
// strict: a measurement exactly equal to the threshold is not exceeded.
func Evaluate(measuredGB, thresholdGB float64) Report {
	return Report{
		MeasuredGB:  measuredGB,
		ThresholdGB: thresholdGB,
		Exceeded:    measuredGB > thresholdGB,
	}
}

// Percent returns measured usage as a percentage of the threshold.
func (r Report) Percent() float64 {
	if r.ThresholdGB <= 0 {
		return 0
	}
	return r.MeasuredGB / r.ThresholdGB * 100
}
