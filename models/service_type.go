package models

// ServiceType tags an order line with the laundry service it belongs to.
type ServiceType string

const (
	ServiceLaundry     ServiceType = "laundry"
	ServiceDuvets      ServiceType = "duvets"
	ServiceDryCleaning ServiceType = "dryCleaning"
)

// ServiceSelection is the set of service flags a customer can pick in the wizard.
type ServiceSelection struct {
	Laundry     bool `json:"laundry" bson:"laundry"`
	Duvets      bool `json:"duvets" bson:"duvets"`
	DryCleaning bool `json:"dryCleaning" bson:"dryCleaning"`
}

// Any reports whether at least one service is selected.
func (s ServiceSelection) Any() bool {
	return s.Laundry || s.Duvets || s.DryCleaning
}
