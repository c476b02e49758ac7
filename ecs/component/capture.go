package component

// Capture tracks vacuum capture progress. Progress only matters while the
// owning ghost is capturable.
type Capture struct {
	Progress    float64
	ProgressMax float64
	// CaptureRate is progress gained per second of vacuum contact.
	CaptureRate float64
	// StunnedTick is the fixed tick on which the ghost was stunned.
	StunnedTick uint64
	// Reward names the tengo script that prices this capture.
	Reward string
}

var CaptureComponent = NewComponent[Capture]()
