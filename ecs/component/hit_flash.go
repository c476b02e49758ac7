package component

// HitFlash blinks an entity white until the deadline passes.
type HitFlash struct {
	Until    float64
	Interval float64
	NextAt   float64
	On       bool
}

var HitFlashComponent = NewComponent[HitFlash]()
