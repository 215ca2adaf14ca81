package models

import "time"

// CustomerAttributes are the editable profile fields (API CustomerInput).
type CustomerAttributes struct {
	CustomerName     string `json:"customerName"`
	CustomerLocation string `json:"customerLocation"`
	CustomerContact  string `json:"customerContact"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerImageURL string `json:"customerImageUrl"`
}

type Customer struct {
	ID string `json:"id"`
	CustomerAttributes
	ProjectIDs []string   `json:"projectIds"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
