package mapping

import "fmt"

// EmptyInputError is returned when the solver gets no seeds or intervals.
// There is no meaningful minimum of nothing.
type EmptyInputError struct {
	Mode Mode
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s mode: no input to solve", e.Mode)
}

// StageOrderError is returned by NewPipeline when no stage is given. Use
// IdentityPipeline for a pipeline that passes values through.
type StageOrderError struct {
	Reason string
}

func (e *StageOrderError) Error() string {
	return "pipeline: " + e.Reason
}
