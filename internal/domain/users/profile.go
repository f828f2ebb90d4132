package users

import "time"

// Profile holds the appearance details a customer enters in the studio; one per user
type Profile struct {
	ID              string `validate:"required,uuid4"`
	UserID          string `validate:"required,uuid4"`
	Gender          string `validate:"max=50"`
	AgeRange        string `validate:"max=50"`
	Ethnicity       string `validate:"max=100"`
	HairColor       string `validate:"max=50"`
	EyeColor        string `validate:"max=50"`
	BodyType        string `validate:"max=50"`
	AdditionalInfo  string `validate:"max=1000"`
	WizardStep      int    `validate:"min=0,max=3"`
	DesignSubstep   bool
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// ProfileInput carries the editable profile fields
type ProfileInput struct {
	Gender         string `json:"gender" validate:"required,max=50"`
	AgeRange       string `json:"ageRange" validate:"required,max=50"`
	Ethnicity      string `json:"ethnicity" validate:"max=100"`
	HairColor      string `json:"hairColor" validate:"max=50"`
	EyeColor       string `json:"eyeColor" validate:"max=50"`
	BodyType       string `json:"bodyType" validate:"max=50"`
	AdditionalInfo string `json:"additionalInfo" validate:"max=1000"`
}

// Validate for validating Profile struct
func (p *Profile) Validate() error {
	return validateStruct(p)
}

// Validate for validating ProfileInput struct
func (in *ProfileInput) Validate() error {
	return validateStruct(in)
}

// IsComplete reports whether the fields required before uploading photos are filled in
func (p *Profile) IsComplete() bool {
	return p != nil && p.Gender != "" && p.AgeRange != ""
}

// Apply copies the editable fields of in onto the profile
func (p *Profile) Apply(in *ProfileInput, now time.Time) {
	p.Gender = in.Gender
	p.AgeRange = in.AgeRange
	p.Ethnicity = in.Ethnicity
	p.HairColor = in.HairColor
	p.EyeColor = in.EyeColor
	p.BodyType = in.BodyType
	p.AdditionalInfo = in.AdditionalInfo
	p.DateTimeUpdated = now
}
