package tutor

// StopReason indicates why the model stopped generating.
type StopReason string

const (
	StopEndTurn StopReason = "end_turn"
	StopLength  StopReason = "length"
	StopFilter  StopReason = "filter"
	StopUnknown StopReason = "unknown"
)
