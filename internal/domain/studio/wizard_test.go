//go:build unit
// +build unit

package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_NextWalksAllPages(t *testing.T) {
	s := State{}
	expected := []State{
		{CurrentStep: StepUpload},
		{CurrentStep: StepDesign},
		{CurrentStep: StepDesign, DesignSubstep: true},
		{CurrentStep: StepPayment},
		{CurrentStep: StepPayment},
	}

	for _, want := range expected {
		s = s.Next()
		assert.Equal(t, want, s)
	}
}

func TestState_PrevWalksAllPages(t *testing.T) {
	s := State{CurrentStep: StepPayment}
	expected := []State{
		{CurrentStep: StepDesign, DesignSubstep: true},
		{CurrentStep: StepDesign},
		{CurrentStep: StepUpload},
		{CurrentStep: StepWelcome},
		{CurrentStep: StepWelcome},
	}

	for _, want := range expected {
		s = s.Prev()
		assert.Equal(t, want, s)
	}
}

func TestState_GoToClamps(t *testing.T) {
	assert.Equal(t, StepPayment, State{}.GoTo(9).CurrentStep)
	assert.Equal(t, StepWelcome, State{CurrentStep: StepDesign}.GoTo(-2).CurrentStep)

	s := State{CurrentStep: StepDesign, DesignSubstep: true}
	assert.True(t, s.GoTo(StepDesign).DesignSubstep, "staying on the page keeps the substep")
	assert.False(t, s.GoTo(StepUpload).DesignSubstep)
}

func TestFacts_MaxStep(t *testing.T) {
	tests := []struct {
		name     string
		facts    Facts
		expected Step
	}{
		{"no profile", Facts{UploadCount: 10, PhotoRequestCount: 2, MinUploads: 5}, StepWelcome},
		{"too few uploads", Facts{HasProfile: true, UploadCount: 4, PhotoRequestCount: 2, MinUploads: 5}, StepUpload},
		{"no photo requests", Facts{HasProfile: true, UploadCount: 5, MinUploads: 5}, StepDesign},
		{"complete", Facts{HasProfile: true, UploadCount: 5, PhotoRequestCount: 1, MinUploads: 5}, StepPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.facts.MaxStep())
			assert.Equal(t, tt.expected == StepPayment, tt.facts.ReadyForCheckout())
		})
	}
}

func TestHydrate(t *testing.T) {
	complete := Facts{HasProfile: true, UploadCount: 6, PhotoRequestCount: 3, MinUploads: 5}

	s := Hydrate(State{CurrentStep: StepDesign, DesignSubstep: true}, complete)
	assert.Equal(t, State{CurrentStep: StepDesign, DesignSubstep: true}, s)

	// uploads were deleted since the state was saved
	s = Hydrate(State{CurrentStep: StepPayment}, Facts{HasProfile: true, UploadCount: 2, MinUploads: 5})
	assert.Equal(t, State{CurrentStep: StepUpload}, s)

	s = Hydrate(State{CurrentStep: StepDesign, DesignSubstep: true}, Facts{})
	assert.Equal(t, State{}, s)

	s = Hydrate(State{CurrentStep: 7, DesignSubstep: true}, complete)
	assert.Equal(t, State{CurrentStep: StepPayment}, s)
}

func TestUpdateValidation(t *testing.T) {
	step := StepDesign

	require.NoError(t, (&Update{Action: ActionNext}).Validate())
	require.NoError(t, (&Update{Action: ActionGoTo, Step: &step}).Validate())
	assert.Error(t, (&Update{Action: ActionGoTo}).Validate())
	assert.Error(t, (&Update{Action: "jump"}).Validate())
	assert.Equal(t, "design", step.String())
}
