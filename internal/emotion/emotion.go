package emotion

// #region state

// State holds four bounded emotional inputs and the resonance charge
// derived from them. Inputs are intended in [0, 1] but not enforced at
// construction; the charge is always clamped. Immutable after New.
type State struct {
	Joy    float64
	Grief  float64
	Awe    float64
	Rage   float64
	charge float64
}

// New computes the resonance charge once at construction:
// clamp((joy + awe) - (0.5*grief + 0.25*rage), 0, 1).
func New(joy, grief, awe, rage float64) State {
	return State{
		Joy:    joy,
		Grief:  grief,
		Awe:    awe,
		Rage:   rage,
		charge: Charge(joy, grief, awe, rage),
	}
}

// Charge returns the resonance charge, a scalar in [0, 1].
func (s State) Charge() float64 {
	return s.charge
}

// #endregion state

// #region charge

// Charge derives the resonance charge from four emotional inputs. Pure,
// no state.
func Charge(joy, grief, awe, rage float64) float64 {
	return clamp((joy + awe) - (0.5*grief + 0.25*rage))
}

// clamp restricts v to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion charge
