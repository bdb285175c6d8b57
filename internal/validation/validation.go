// Package validation holds the pre-submit form checks. Every validator
// is a pure function from a draft to a list of field errors; nothing
// here touches the network or shared state, and an empty result means
// the draft may be submitted.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/models"
)

// Field identifies which input a validation error belongs to.
type Field string

const (
	FieldUserID          Field = "user_id"
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldTitle           Field = "title"
	FieldDescription     Field = "description"
	FieldDueDate         Field = "due_date"
	FieldPriority        Field = "priority"
	FieldCurrentPassword Field = "current_password"
	FieldNewPassword     Field = "new_password"
	FieldConfirmPassword Field = "confirm_password"
)

type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is the result of a validator run.
type Errors []FieldError

// For returns the message attached to field, or "".
func (errs Errors) For(field Field) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// Registration checks a sign-up draft.
func Registration(draft models.Registration) Errors {
	var errs Errors
	if strings.TrimSpace(draft.UserID) == "" {
		errs = append(errs, FieldError{FieldUserID, "User ID Is Required"})
	}
	if strings.TrimSpace(draft.Name) == "" {
		errs = append(errs, FieldError{FieldName, "Name Is Required"})
	}
	if strings.TrimSpace(draft.Email) == "" {
		errs = append(errs, FieldError{FieldEmail, "Email Is Required"})
	} else if !emailPattern.MatchString(draft.Email) {
		errs = append(errs, FieldError{FieldEmail, "Invalid Email Format"})
	}
	if draft.Password == "" {
		errs = append(errs, FieldError{FieldPassword, "Password Is Required"})
	} else if len(draft.Password) < constants.MinPasswordLen {
		errs = append(errs, FieldError{FieldPassword, "Password Must Be At Least 6 Characters Long"})
	}
	return errs
}

// Login checks a sign-in draft.
func Login(draft models.Credentials) Errors {
	var errs Errors
	if strings.TrimSpace(draft.UserID) == "" {
		errs = append(errs, FieldError{FieldUserID, "User ID is required"})
	}
	if draft.Password == "" {
		errs = append(errs, FieldError{FieldPassword, "Password is required"})
	}
	return errs
}

// TaskDraft checks a create or edit draft.
func TaskDraft(draft models.TodoDraft) Errors {
	var errs Errors
	if strings.TrimSpace(draft.Title) == "" {
		errs = append(errs, FieldError{FieldTitle, "Title is required"})
	} else if len(draft.Title) > constants.MaxTitleLen {
		errs = append(errs, FieldError{FieldTitle, fmt.Sprintf("Title must be at most %d characters", constants.MaxTitleLen)})
	}
	if strings.TrimSpace(draft.Description) == "" {
		errs = append(errs, FieldError{FieldDescription, "Description is required"})
	} else if len(draft.Description) > constants.MaxDescriptionLen {
		errs = append(errs, FieldError{FieldDescription, fmt.Sprintf("Description must be at most %d characters", constants.MaxDescriptionLen)})
	}
	if strings.TrimSpace(draft.DueDate) == "" {
		errs = append(errs, FieldError{FieldDueDate, "Due date is required"})
	}
	if draft.Priority == "" {
		errs = append(errs, FieldError{FieldPriority, "Priority is required"})
	} else if !draft.Priority.Valid() {
		errs = append(errs, FieldError{FieldPriority, "Priority must be low, medium, or high"})
	}
	return errs
}

// PasswordChange checks the current/new/confirm triple.
func PasswordChange(draft models.PasswordChange) Errors {
	var errs Errors
	if draft.Current == "" {
		errs = append(errs, FieldError{FieldCurrentPassword, "Current password is required"})
	}
	if draft.New == "" {
		errs = append(errs, FieldError{FieldNewPassword, "New password is required"})
	} else if len(draft.New) < constants.MinPasswordLen {
		errs = append(errs, FieldError{FieldNewPassword, "New password must be at least 6 characters long"})
	}
	if draft.Confirm == "" {
		errs = append(errs, FieldError{FieldConfirmPassword, "Confirm password is required"})
	} else if draft.New != "" && draft.New != draft.Confirm {
		errs = append(errs, FieldError{FieldConfirmPassword, "New passwords don't match"})
	}
	return errs
}
