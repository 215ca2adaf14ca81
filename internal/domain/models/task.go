package models

import "time"

// TaskAttributes are the editable description fields (API TaskInput).
// ProjectID is the required owning project. The freelancer link is managed
// through linking, not the description form.
type TaskAttributes struct {
	TaskName        string   `json:"taskName"`
	TaskStart       Date     `json:"taskStart"`
	TaskFinish      Date     `json:"taskFinish"`
	TaskPurchase    *float64 `json:"taskPurchase"`
	TaskSale        *float64 `json:"taskSale"`
	TaskDescription string   `json:"taskDescription"`
	ProjectID       string   `json:"project,omitempty"`
}

type Task struct {
	ID string `json:"id"`
	TaskAttributes
	ProjectName    string     `json:"projectName,omitempty"`
	FreelancerID   string     `json:"freelancerId,omitempty"`
	FreelancerName string     `json:"freelancerName,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
