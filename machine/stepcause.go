package machine

//go:generate go tool stringer -type=StepCause -trimprefix=Step -output=stepcause_string.go

// StepCause records why a rotor moved on a keystroke.
type StepCause int

const (
	StepNone    StepCause = iota // rotor stayed put
	StepRatchet                  // rightmost rotor, steps on every keystroke
	StepCarry                    // right neighbour was at a turnover position
	StepDouble                   // middle rotor was at its own turnover position
)

// Stepped reports whether the rotor moved.
func (c StepCause) Stepped() bool {
	return c != StepNone
}
