package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
)

func TestFreelancerCreateRoundTrip(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	attrs := &models.FreelancerAttributes{
		FirstName:     " Alan ",
		LastName:      "Turing",
		PhoneNumber:   "333",
		Email:         "alan@example.com",
		ImageURL:      "https://example.com/alan.png",
		AvailableFrom: models.MustParseDate("2024-05-01"),
		HourlyRate:    ptr(95),
		Rating:        ptr(4.5),
	}
	res, err := fx.set.Freelancers.Create(ctx, attrs)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	created := res.Record.(*models.Freelancer)
	if res.Redirect != "/freelancers/"+created.ID {
		t.Errorf("Redirect = %q", res.Redirect)
	}

	panel, err := fx.set.Panels.Panel(ctx, models.Freelancers, models.EditMode(created.ID))
	if err != nil {
		t.Fatalf("Panel() error = %v", err)
	}
	got := panel.Record.(*models.Freelancer)
	if got.FirstName != "Alan" {
		t.Errorf("FirstName = %q, want trimmed %q", got.FirstName, "Alan")
	}
	if got.Email != attrs.Email || got.AvailableFrom.String() != "2024-05-01" || *got.Rating != 4.5 {
		t.Errorf("round trip mismatch: %+v", got.FreelancerAttributes)
	}
	if panel.Form.Dirty || !panel.Form.Valid || !panel.Form.CanDelete {
		t.Errorf("fresh panel form = %+v", panel.Form)
	}
}

func TestFreelancerValidation(t *testing.T) {
	fx := newFixture(t, "child")

	tests := []struct {
		name   string
		attrs  models.FreelancerAttributes
		fields []string
	}{
		{name: "required names and phone", attrs: models.FreelancerAttributes{}, fields: []string{"firstName", "lastName", "phoneNumber"}},
		{name: "phone digits only", attrs: models.FreelancerAttributes{FirstName: "A", LastName: "B", PhoneNumber: "12-34"}, fields: []string{"phoneNumber"}},
		{name: "email and url", attrs: models.FreelancerAttributes{FirstName: "A", LastName: "B", PhoneNumber: "9", Email: "nope", ImageURL: "not a url"}, fields: []string{"email", "imageUrl"}},
		{name: "rating above max", attrs: models.FreelancerAttributes{FirstName: "A", LastName: "B", PhoneNumber: "9", Rating: ptr(6)}, fields: []string{"rating"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.set.Freelancers.Create(context.Background(), &tt.attrs)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			for _, f := range tt.fields {
				if verr.Fields[f] == "" {
					t.Errorf("missing error for %s in %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestProjectFinishBeforeStartIsRejected(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	attrs := &models.ProjectAttributes{
		ProjectName:     "Rebrand",
		ProjectStart:    models.MustParseDate("2024-05-10"),
		ProjectFinish:   models.MustParseDate("2024-05-01"),
		ProjectPurchase: ptr(100),
		ProjectSale:     ptr(200),
	}
	_, err := fx.set.Projects.CreateForCustomer(ctx, fx.ids["acme"], attrs)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateForCustomer() error = %v, want ValidationError", err)
	}
	if verr.Fields["projectFinish"] != msgEndBeforeStart {
		t.Errorf("projectFinish error = %q, want %q", verr.Fields["projectFinish"], msgEndBeforeStart)
	}

	projects, _ := fx.store.Gateway().Projects().List(ctx, repositories.ProjectQuery{Search: "Rebrand"})
	if len(projects) != 0 {
		t.Errorf("invalid project was created: %v", projects)
	}
}

func TestChildCreationForms(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	// amounts are required on the parent's add form
	_, err := fx.set.Projects.CreateForCustomer(ctx, fx.ids["acme"], &models.ProjectAttributes{
		ProjectName:   "Rebrand",
		ProjectStart:  models.MustParseDate("2024-05-01"),
		ProjectFinish: models.MustParseDate("2024-06-01"),
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["projectPurchase"] == "" || verr.Fields["projectSale"] == "" {
		t.Fatalf("CreateForCustomer() without amounts error = %v", err)
	}

	res, err := fx.set.Projects.CreateForCustomer(ctx, fx.ids["acme"], &models.ProjectAttributes{
		ProjectName:     "Rebrand",
		ProjectStart:    models.MustParseDate("2024-05-01"),
		ProjectFinish:   models.MustParseDate("2024-06-01"),
		ProjectPurchase: ptr(0),
		ProjectSale:     ptr(1500),
		CustomerID:      "someone-else",
	})
	if err != nil {
		t.Fatalf("CreateForCustomer() error = %v", err)
	}
	project := res.Record.(*models.Project)
	if project.CustomerID != fx.ids["acme"] || project.CustomerName != "Acme" {
		t.Errorf("project owner = %q %q", project.CustomerID, project.CustomerName)
	}

	res, err = fx.set.Tasks.CreateForProject(ctx, project.ID, &models.TaskAttributes{
		TaskName:     "Logo",
		TaskStart:    models.MustParseDate("2024-05-02"),
		TaskFinish:   models.MustParseDate("2024-05-09"),
		TaskPurchase: ptr(10),
		TaskSale:     ptr(20),
	})
	if err != nil {
		t.Fatalf("CreateForProject() error = %v", err)
	}
	if task := res.Record.(*models.Task); task.ProjectID != project.ID {
		t.Errorf("task project = %q, want %q", task.ProjectID, project.ID)
	}

	_, err = fx.set.Tasks.CreateForProject(ctx, "404", &models.TaskAttributes{TaskName: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("CreateForProject() on missing project error = %v, want ErrNotFound", err)
	}
}

func TestChildFormStateMatchesCreate(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	project := func() *models.ProjectAttributes {
		return &models.ProjectAttributes{
			ProjectName:     "Rebrand",
			ProjectStart:    models.MustParseDate("2024-05-01"),
			ProjectFinish:   models.MustParseDate("2024-06-01"),
			ProjectPurchase: ptr(0),
			ProjectSale:     ptr(1500),
		}
	}

	st, err := fx.set.Projects.FormForCustomer(ctx, fx.ids["acme"], project())
	if err != nil {
		t.Fatalf("FormForCustomer() error = %v", err)
	}
	if !st.CanSave || len(st.Errors) != 0 {
		t.Errorf("FormForCustomer() canSave = %v, errors = %v", st.CanSave, st.Errors)
	}
	if _, err := fx.set.Projects.CreateForCustomer(ctx, fx.ids["acme"], project()); err != nil {
		t.Fatalf("CreateForCustomer() error = %v", err)
	}

	// an untouched add form is not dirty even though the owner is bound
	st, err = fx.set.Projects.FormForCustomer(ctx, fx.ids["acme"], &models.ProjectAttributes{})
	if err != nil {
		t.Fatalf("FormForCustomer() empty error = %v", err)
	}
	if st.Dirty || st.CanSave {
		t.Errorf("empty add form dirty = %v, canSave = %v", st.Dirty, st.CanSave)
	}

	task := func() *models.TaskAttributes {
		return &models.TaskAttributes{
			TaskName:     "Logo",
			TaskStart:    models.MustParseDate("2024-05-02"),
			TaskFinish:   models.MustParseDate("2024-05-09"),
			TaskPurchase: ptr(10),
			TaskSale:     ptr(20),
		}
	}
	st, err = fx.set.Tasks.FormForProject(ctx, fx.ids["website"], task())
	if err != nil {
		t.Fatalf("FormForProject() error = %v", err)
	}
	if !st.CanSave || len(st.Errors) != 0 {
		t.Errorf("FormForProject() canSave = %v, errors = %v", st.CanSave, st.Errors)
	}
	if _, err := fx.set.Tasks.CreateForProject(ctx, fx.ids["website"], task()); err != nil {
		t.Fatalf("CreateForProject() error = %v", err)
	}

	_, err = fx.set.Tasks.FormForProject(ctx, "404", task())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FormForProject() on missing project error = %v, want ErrNotFound", err)
	}
}

func TestUpdateUnchangedIsNoop(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	cur, _ := fx.store.Gateway().Customers().GetByID(ctx, fx.ids["acme"])
	attrs := cur.CustomerAttributes
	res, err := fx.set.Customers.Update(ctx, fx.ids["acme"], &attrs)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if res.Saved || res.Form.Dirty || res.Form.CanSave {
		t.Errorf("unchanged update = %+v, form %+v", res, res.Form)
	}

	after, _ := fx.store.Gateway().Customers().GetByID(ctx, fx.ids["acme"])
	if !after.UpdatedAt.Equal(*cur.UpdatedAt) {
		t.Error("unchanged update reached the repository")
	}
}

func TestProjectUpdateKeepsCustomer(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	res, err := fx.set.Projects.Update(ctx, fx.ids["website"], &models.ProjectAttributes{
		ProjectName:   "Website v2",
		ProjectStart:  models.MustParseDate("2024-01-01"),
		ProjectFinish: models.MustParseDate("2024-04-01"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	p := res.Record.(*models.Project)
	if !res.Saved || p.ProjectName != "Website v2" || p.CustomerID != fx.ids["acme"] {
		t.Errorf("Update() = %+v", p)
	}
	if res.Form.Dirty {
		t.Error("form not reset to saved values")
	}
}

func TestFormState(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	tests := []struct {
		name          string
		mode          models.PanelMode
		draft         *models.CustomerAttributes
		wantDirty     bool
		wantValid     bool
		wantCanSave   bool
		wantCanDelete bool
	}{
		{name: "empty add form", mode: models.AddMode(), draft: nil, wantDirty: false, wantValid: false},
		{name: "valid add draft", mode: models.AddMode(), draft: &models.CustomerAttributes{CustomerName: "Initech", CustomerPhone: "42"}, wantDirty: true, wantValid: true, wantCanSave: true},
		{name: "edit with dependents cannot delete", mode: models.EditMode(fx.ids["acme"]), draft: nil, wantValid: true},
		{name: "invalid edit draft", mode: models.EditMode(fx.ids["acme"]), draft: &models.CustomerAttributes{CustomerName: "Acme"}, wantDirty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := fx.set.Customers.Form(ctx, tt.mode, tt.draft)
			if err != nil {
				t.Fatalf("Form() error = %v", err)
			}
			if st.Dirty != tt.wantDirty || st.Valid != tt.wantValid || st.CanSave != tt.wantCanSave || st.CanDelete != tt.wantCanDelete {
				t.Errorf("Form() = dirty %v valid %v canSave %v canDelete %v", st.Dirty, st.Valid, st.CanSave, st.CanDelete)
			}
		})
	}
}

func TestDeleteGuard(t *testing.T) {
	fx := newFixture(t, "child")
	ctx := context.Background()

	var derr *domain.DependentsError
	if _, err := fx.set.Customers.Delete(ctx, fx.ids["acme"]); !errors.As(err, &derr) || derr.Count != 1 {
		t.Fatalf("Delete(customer with project) error = %v", err)
	}
	if _, err := fx.set.Projects.Delete(ctx, fx.ids["website"]); !errors.As(err, &derr) || derr.Count != 2 {
		t.Fatalf("Delete(project with tasks) error = %v", err)
	}

	ada := fx.ids["Lovelace"]
	if _, err := fx.set.Links.LinkTask(ctx, ada, fx.ids["Wireframes"]); err != nil {
		t.Fatal(err)
	}
	if _, err := fx.set.Freelancers.Delete(ctx, ada); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Delete(freelancer with tasks) error = %v", err)
	}

	res, err := fx.set.Freelancers.Delete(ctx, fx.ids["Hopper"])
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if res.Redirect != "/freelancers/add" {
		t.Errorf("Redirect = %q, want /freelancers/add", res.Redirect)
	}

	// tasks have no dependents
	res, err = fx.set.Tasks.Delete(ctx, fx.ids["Copywriting"])
	if err != nil || res.Redirect != "/tasks/select" {
		t.Errorf("Delete(task) = %+v, %v", res, err)
	}
	if _, err := fx.set.Tasks.Delete(ctx, fx.ids["Copywriting"]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete(task) error = %v, want ErrNotFound", err)
	}
}

func TestSubmitGuardCollapsesDuplicates(t *testing.T) {
	guard := NewSubmitGuard()
	ctx := context.Background()
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]*models.SaveResult, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = guard.Do(ctx, "k", func(context.Context) (*models.SaveResult, error) {
			calls.Add(1)
			close(started)
			<-release
			return &models.SaveResult{Saved: true}, nil
		})
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = guard.Do(ctx, "k", func(context.Context) (*models.SaveResult, error) {
			calls.Add(1)
			return &models.SaveResult{Saved: true}, nil
		})
	}()

	close(release)
	wg.Wait()

	// the second caller either joined the first call or ran after it finished
	if n := calls.Load(); n < 1 || n > 2 {
		t.Errorf("calls = %d", n)
	}
	if results[0] == nil || results[1] == nil || !results[0].Saved || !results[1].Saved {
		t.Errorf("results = %+v", results)
	}
}

func TestSubmitGuardSurvivesFirstCallerCancel(t *testing.T) {
	guard := NewSubmitGuard()
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	submit := func(ctx context.Context) (*models.SaveResult, error) {
		calls.Add(1)
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return &models.SaveResult{Saved: true}, nil
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := guard.Do(firstCtx, "k", submit)
		firstErr <- err
	}()
	<-started

	type outcome struct {
		res *models.SaveResult
		err error
	}
	second := make(chan outcome, 1)
	go func() {
		res, err := guard.Do(context.Background(), "k", submit)
		second <- outcome{res, err}
	}()

	cancelFirst()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("first caller err = %v, want context.Canceled", err)
	}

	// let the second caller join the flight that is still blocked
	time.Sleep(50 * time.Millisecond)
	close(release)

	got := <-second
	if got.err != nil {
		t.Fatalf("second caller err = %v", got.err)
	}
	if got.res == nil || !got.res.Saved {
		t.Errorf("second caller result = %+v", got.res)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}
