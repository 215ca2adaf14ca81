package service

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
)

// Field messages shown under the form inputs.
const (
	msgEndBeforeStart   = "End date can't be before start date"
	msgDateRequired     = "Date is required"
	msgPurchaseRequired = "Purchase amount is required"
	msgSaleRequired     = "Sale amount is required"
	msgPhoneRequired    = "Phone number is required"
	msgIncorrectURL     = "Incorrect URL"
)

// requiredDate is validation.Required for models.Date, which ozzo cannot
// see as empty on its own.
var requiredDate = validation.By(func(value any) error {
	if d, ok := value.(models.Date); ok && d.IsZero() {
		return errors.New(msgDateRequired)
	}
	return nil
})

func required(message string) validation.Rule {
	return validation.Required.Error(message)
}

// notBefore rejects a finish date earlier than start. Unset dates are left
// to requiredDate.
func notBefore(start models.Date) validation.Rule {
	return validation.By(func(value any) error {
		finish, ok := value.(models.Date)
		if !ok || finish.IsZero() || start.IsZero() {
			return nil
		}
		if finish.Before(start) {
			return errors.New(msgEndBeforeStart)
		}
		return nil
	})
}

func validateFreelancer(a *models.FreelancerAttributes) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.FirstName, required("First name is required"), validation.Length(1, config.MaxNameLength)),
		validation.Field(&a.LastName, required("Last name is required"), validation.Length(1, config.MaxNameLength)),
		validation.Field(&a.PhoneNumber, required(msgPhoneRequired), is.Digit),
		validation.Field(&a.Email, is.EmailFormat),
		validation.Field(&a.ImageURL, is.URL.Error(msgIncorrectURL)),
		validation.Field(&a.HourlyRate, validation.Min(0.0)),
		validation.Field(&a.Rating, validation.Min(0.0), validation.Max(float64(config.MaxRating))),
		validation.Field(&a.Description, validation.Length(0, config.MaxDescriptionLength)),
	)
}

func validateCustomer(a *models.CustomerAttributes) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.CustomerName, required("Customer name is required"), validation.Length(1, config.MaxNameLength)),
		validation.Field(&a.CustomerPhone, required(msgPhoneRequired), is.Digit),
		validation.Field(&a.CustomerEmail, is.EmailFormat),
		validation.Field(&a.CustomerImageURL, is.URL.Error(msgIncorrectURL)),
	)
}

// validateProject checks the description form. The customer's "add project"
// form also requires the amounts and the owning customer.
func validateProject(a *models.ProjectAttributes, creating bool) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.ProjectName, required("Project name is required"), validation.Length(1, config.MaxNameLength)),
		validation.Field(&a.ProjectStart, requiredDate),
		validation.Field(&a.ProjectFinish, requiredDate, notBefore(a.ProjectStart)),
		validation.Field(&a.ProjectPurchase, validation.When(creating, validation.NotNil.Error(msgPurchaseRequired)), validation.Min(0.0)),
		validation.Field(&a.ProjectSale, validation.When(creating, validation.NotNil.Error(msgSaleRequired)), validation.Min(0.0)),
		validation.Field(&a.ProjectDescription, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&a.CustomerID, validation.When(creating, required("Customer is required"))),
	)
}

func validateTask(a *models.TaskAttributes, creating bool) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.TaskName, required("Task name is required"), validation.Length(1, config.MaxNameLength)),
		validation.Field(&a.TaskStart, requiredDate),
		validation.Field(&a.TaskFinish, requiredDate, notBefore(a.TaskStart)),
		validation.Field(&a.TaskPurchase, validation.When(creating, validation.NotNil.Error(msgPurchaseRequired)), validation.Min(0.0)),
		validation.Field(&a.TaskSale, validation.When(creating, validation.NotNil.Error(msgSaleRequired)), validation.Min(0.0)),
		validation.Field(&a.TaskDescription, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&a.ProjectID, validation.When(creating, required("Project is required"))),
	)
}

// fieldErrors flattens ozzo errors into field -> message.
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for field, fe := range errs {
		if fe != nil {
			out[field] = fe.Error()
		}
	}
	return out
}

// asValidationError wraps validation output as the domain error handlers map to 422.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &domain.ValidationError{Message: "please correct the highlighted fields", Fields: fieldErrors(err)}
}

func trimFreelancer(a *models.FreelancerAttributes) {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.PhoneNumber = strings.TrimSpace(a.PhoneNumber)
	a.Email = strings.TrimSpace(a.Email)
	a.ImageURL = strings.TrimSpace(a.ImageURL)
	a.PlaceOfResidence = strings.TrimSpace(a.PlaceOfResidence)
}

func trimCustomer(a *models.CustomerAttributes) {
	a.CustomerName = strings.TrimSpace(a.CustomerName)
	a.CustomerLocation = strings.TrimSpace(a.CustomerLocation)
	a.CustomerContact = strings.TrimSpace(a.CustomerContact)
	a.CustomerEmail = strings.TrimSpace(a.CustomerEmail)
	a.CustomerPhone = strings.TrimSpace(a.CustomerPhone)
	a.CustomerImageURL = strings.TrimSpace(a.CustomerImageURL)
}

func trimProject(a *models.ProjectAttributes) {
	a.ProjectName = strings.TrimSpace(a.ProjectName)
}

func trimTask(a *models.TaskAttributes) {
	a.TaskName = strings.TrimSpace(a.TaskName)
}
