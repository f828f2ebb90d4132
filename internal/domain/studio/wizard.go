package studio

import (
	"fmt"
)

// Step is a page of the studio wizard
type Step int

// Wizard steps in order
const (
	StepWelcome Step = iota
	StepUpload
	StepDesign
	StepPayment
)

// FirstStep and LastStep bound every transition
const (
	FirstStep = StepWelcome
	LastStep  = StepPayment
)

var stepNames = map[Step]string{
	StepWelcome: "welcome",
	StepUpload:  "upload",
	StepDesign:  "design",
	StepPayment: "payment",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func clamp(s Step) Step {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}

// State is the position of a customer in the wizard. On the design step
// DesignSubstep distinguishes the instruction list from the style picker.
type State struct {
	CurrentStep   Step `json:"currentStep"`
	DesignSubstep bool `json:"designSubstep"`
}

// Next moves one page forward. The design step has two pages, so the first
// Next there only raises DesignSubstep.
func (s State) Next() State {
	if s.CurrentStep == StepDesign && !s.DesignSubstep {
		s.DesignSubstep = true
		return s
	}
	s.CurrentStep = clamp(s.CurrentStep + 1)
	if s.CurrentStep != StepDesign {
		s.DesignSubstep = false
	}
	return s
}

// Prev moves one page back; on the second design page it only clears DesignSubstep.
func (s State) Prev() State {
	if s.CurrentStep == StepDesign && s.DesignSubstep {
		s.DesignSubstep = false
		return s
	}
	from := s.CurrentStep
	s.CurrentStep = clamp(s.CurrentStep - 1)
	// coming back from payment lands on the last design page
	s.DesignSubstep = from == StepPayment && s.CurrentStep == StepDesign
	return s
}

// GoTo jumps to step, clamped to the wizard bounds
func (s State) GoTo(step Step) State {
	target := clamp(step)
	if target != s.CurrentStep {
		s.DesignSubstep = false
	}
	s.CurrentStep = target
	return s
}

// Facts are the server-side observations that gate how far a customer may go
type Facts struct {
	HasProfile        bool  `json:"hasProfile"`
	UploadCount       int64 `json:"uploadCount"`
	PhotoRequestCount int64 `json:"photoRequestCount"`
	MinUploads        int   `json:"minUploads"`
}

// MaxStep returns the furthest step the facts allow
func (f Facts) MaxStep() Step {
	switch {
	case !f.HasProfile:
		return StepWelcome
	case f.UploadCount < int64(f.MinUploads):
		return StepUpload
	case f.PhotoRequestCount == 0:
		return StepDesign
	default:
		return StepPayment
	}
}

// ReadyForCheckout reports whether every step before payment is satisfied
func (f Facts) ReadyForCheckout() bool {
	return f.MaxStep() == StepPayment
}

// Hydrate combines a persisted state with the facts, capping the step at MaxStep
func Hydrate(persisted State, facts Facts) State {
	s := State{CurrentStep: clamp(persisted.CurrentStep), DesignSubstep: persisted.DesignSubstep}
	if limit := facts.MaxStep(); s.CurrentStep > limit {
		s.CurrentStep = limit
		s.DesignSubstep = false
	}
	if s.CurrentStep != StepDesign {
		s.DesignSubstep = false
	}
	return s
}
