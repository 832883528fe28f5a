package models

// BookingForm accumulates the wizard's field state for one booking attempt.
// It lives only inside the session cache and is discarded once submission
// succeeds or the session expires.
type BookingForm struct {
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Email          string           `json:"email"`
	Mobile         string           `json:"mobile"`
	Address        string           `json:"address"`
	Postcode       string           `json:"postcode"`
	Services       ServiceSelection `json:"services"`
	Lockers        []string         `json:"lockers"`
	CollectionDate string           `json:"collectionDate"` // YYYY-MM-DD
	Notes          string           `json:"notes"`
}

// BookingFormPatch is a strongly typed partial update of a BookingForm.
// Only non-nil fields are applied; unknown field names cannot be expressed.
type BookingFormPatch struct {
	FirstName      *string           `json:"firstName,omitempty"`
	LastName       *string           `json:"lastName,omitempty"`
	Email          *string           `json:"email,omitempty"`
	Mobile         *string           `json:"mobile,omitempty"`
	Address        *string           `json:"address,omitempty"`
	Postcode       *string           `json:"postcode,omitempty"`
	Services       *ServiceSelection `json:"services,omitempty"`
	CollectionDate *string           `json:"collectionDate,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
}

// Apply copies the patch's populated fields onto the form.
func (p BookingFormPatch) Apply(f *BookingForm) {
	if p.FirstName != nil {
		f.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		f.LastName = *p.LastName
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Mobile != nil {
		f.Mobile = *p.Mobile
	}
	if p.Address != nil {
		f.Address = *p.Address
	}
	if p.Postcode != nil {
		f.Postcode = *p.Postcode
	}
	if p.Services != nil {
		f.Services = *p.Services
	}
	if p.CollectionDate != nil {
		f.CollectionDate = *p.CollectionDate
	}
	if p.Notes != nil {
		f.Notes = *p.Notes
	}
}
