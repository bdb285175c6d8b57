package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/tugas/internal/models"
)

func validRegistration() models.Registration {
	return models.Registration{
		UserID:   "jdoe",
		Name:     "a",
		Email:    "a@b.com",
		Password: "abcdef",
	}
}

func TestRegistration_Valid(t *testing.T) {
	if errs := Registration(validRegistration()); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestRegistration_SingleFieldFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Registration)
		field  Field
	}{
		{"empty user id", func(r *models.Registration) { r.UserID = "" }, FieldUserID},
		{"whitespace user id", func(r *models.Registration) { r.UserID = "   " }, FieldUserID},
		{"empty name", func(r *models.Registration) { r.Name = " " }, FieldName},
		{"empty email", func(r *models.Registration) { r.Email = "" }, FieldEmail},
		{"malformed email", func(r *models.Registration) { r.Email = "bad" }, FieldEmail},
		{"email missing tld", func(r *models.Registration) { r.Email = "a@b" }, FieldEmail},
		{"empty password", func(r *models.Registration) { r.Password = "" }, FieldPassword},
		{"short password", func(r *models.Registration) { r.Password = "abc" }, FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validRegistration()
			tt.mutate(&draft)

			errs := Registration(draft)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("error on field %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestRegistration_EmailCaseInsensitive(t *testing.T) {
	draft := validRegistration()
	draft.Email = "John.DOE+test@Example.CO.UK"
	if errs := Registration(draft); len(errs) != 0 {
		t.Errorf("mixed-case email rejected: %v", errs)
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		draft      models.Credentials
		wantFields []Field
	}{
		{"valid", models.Credentials{UserID: "jdoe", Password: "secret"}, nil},
		{"missing user id", models.Credentials{Password: "secret"}, []Field{FieldUserID}},
		{"missing password", models.Credentials{UserID: "jdoe"}, []Field{FieldPassword}},
		{"missing both", models.Credentials{}, []Field{FieldUserID, FieldPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Login(tt.draft)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, f := range tt.wantFields {
				if errs[i].Field != f {
					t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, f)
				}
			}
		})
	}
}

func TestTaskDraft(t *testing.T) {
	valid := models.TodoDraft{
		Title:       "Write report",
		Description: "Quarterly summary",
		DueDate:     "2025-04-01",
		Priority:    models.PriorityHigh,
	}

	if errs := TaskDraft(valid); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*models.TodoDraft)
		field  Field
	}{
		{"empty title", func(d *models.TodoDraft) { d.Title = "  " }, FieldTitle},
		{"title over limit", func(d *models.TodoDraft) { d.Title = strings.Repeat("x", 101) }, FieldTitle},
		{"empty description", func(d *models.TodoDraft) { d.Description = "" }, FieldDescription},
		{"description over limit", func(d *models.TodoDraft) { d.Description = strings.Repeat("x", 501) }, FieldDescription},
		{"missing due date", func(d *models.TodoDraft) { d.DueDate = "" }, FieldDueDate},
		{"missing priority", func(d *models.TodoDraft) { d.Priority = "" }, FieldPriority},
		{"unknown priority", func(d *models.TodoDraft) { d.Priority = "urgent" }, FieldPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			errs := TaskDraft(draft)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("error on field %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestTaskDraft_BoundaryLengths(t *testing.T) {
	draft := models.TodoDraft{
		Title:       strings.Repeat("t", 100),
		Description: strings.Repeat("d", 500),
		DueDate:     "2025-04-01",
		Priority:    models.PriorityLow,
	}
	if errs := TaskDraft(draft); len(errs) != 0 {
		t.Errorf("limit-length fields rejected: %v", errs)
	}
}

func TestPasswordChange(t *testing.T) {
	valid := models.PasswordChange{Current: "oldpass", New: "newpass", Confirm: "newpass"}

	if errs := PasswordChange(valid); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*models.PasswordChange)
		field  Field
	}{
		{"missing current", func(d *models.PasswordChange) { d.Current = "" }, FieldCurrentPassword},
		{"missing new", func(d *models.PasswordChange) { d.New = "" }, FieldNewPassword},
		{"short new", func(d *models.PasswordChange) { d.New = "abc"; d.Confirm = "abc" }, FieldNewPassword},
		{"missing confirm", func(d *models.PasswordChange) { d.Confirm = "" }, FieldConfirmPassword},
		{"mismatch", func(d *models.PasswordChange) { d.Confirm = "different" }, FieldConfirmPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			errs := PasswordChange(draft)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("error on field %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestErrors_For(t *testing.T) {
	errs := Errors{
		{FieldTitle, "Title is required"},
		{FieldDueDate, "Due date is required"},
	}

	if got := errs.For(FieldDueDate); got != "Due date is required" {
		t.Errorf("For(due_date) = %q", got)
	}
	if got := errs.For(FieldEmail); got != "" {
		t.Errorf("For(email) = %q, want empty", got)
	}
}
