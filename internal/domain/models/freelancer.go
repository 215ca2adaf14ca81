package models

import (
	"strings"
	"time"
)

// FreelancerAttributes are the editable profile fields. JSON names match the
// API's FreelancerInput so the struct is sent as mutation data unchanged.
type FreelancerAttributes struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	PhoneNumber      string   `json:"phoneNumber"`
	Email            string   `json:"email"`
	ImageURL         string   `json:"imageUrl"`
	AvailableFrom    Date     `json:"availableFrom"`
	HourlyRate       *float64 `json:"hourlyRate"`
	Rating           *float64 `json:"rating"`
	PlaceOfResidence string   `json:"placeOfResidence"`
	Description      string   `json:"description"`
}

type Freelancer struct {
	ID string `json:"id"`
	FreelancerAttributes
	TaskIDs   []string   `json:"taskIds"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// DisplayName is "First Last".
func (f *Freelancer) DisplayName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}
