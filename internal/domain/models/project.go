package models

import "time"

// ProjectAttributes are the editable description fields (API ProjectInput).
// CustomerID is the required owning customer.
type ProjectAttributes struct {
	ProjectName        string   `json:"projectName"`
	ProjectStart       Date     `json:"projectStart"`
	ProjectFinish      Date     `json:"projectFinish"`
	ProjectPurchase    *float64 `json:"projectPurchase"`
	ProjectSale        *float64 `json:"projectSale"`
	ProjectDescription string   `json:"projectDescription"`
	CustomerID         string   `json:"customer,omitempty"`
}

type Project struct {
	ID string `json:"id"`
	ProjectAttributes
	CustomerName string     `json:"customerName,omitempty"`
	TaskIDs      []string   `json:"taskIds"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}
