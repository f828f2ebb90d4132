package studio

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Wizard actions accepted by StudioService.Update
const (
	ActionNext = "next"
	ActionPrev = "prev"
	ActionGoTo = "goto"
)

// Update is a requested wizard move
type Update struct {
	Action string `json:"action" validate:"required,oneof=next prev goto"`
	Step   *Step  `json:"step,omitempty"`
}

// Validate checks that goto carries a target step
func (u *Update) Validate() error {
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if u.Action == ActionGoTo && u.Step == nil {
		return fmt.Errorf("validation failed: goto requires a step")
	}
	return nil
}

// View is the hydrated wizard returned to the client
type View struct {
	State   State `json:"state"`
	MaxStep Step  `json:"maxStep"`
	Facts   Facts `json:"facts"`
}

// StudioService defines methods for reading and moving the wizard
type StudioService interface {
	// Facts gathers the observations gating the wizard for a user
	Facts(ctx context.Context, userID string) (*Facts, error)
	// Get returns the hydrated wizard of a user
	Get(ctx context.Context, userID string) (*View, error)
	// Update applies a move, re-hydrates and persists the result
	Update(ctx context.Context, userID string, update *Update) (*View, error)
}
