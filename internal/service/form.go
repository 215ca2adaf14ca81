package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"golang.org/x/sync/singleflight"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
)

// SubmitGuard collapses identical in-flight submissions (a double-clicked
// save button) into one mutation. It is shared by every session.
type SubmitGuard struct {
	group   singleflight.Group
	timeout time.Duration
}

func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{timeout: config.SubmitTimeout}
}

// Do runs fn once per key among concurrent callers; all of them receive its
// result. fn's ctx ignores caller cancellation and is bounded by the guard
// timeout. Each caller returns early when its own ctx is done.
func (g *SubmitGuard) Do(ctx context.Context, key string, fn func(ctx context.Context) (*models.SaveResult, error)) (*models.SaveResult, error) {
	ch := g.group.DoChan(key, func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
		defer cancel()
		return fn(runCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.SaveResult), nil
	}
}

// submitKey identifies a submission by session, target and payload.
func submitKey(sessionID string, kind models.EntityKind, op, id string, payload any) string {
	body, _ := json.Marshal(payload)
	return fmt.Sprintf("%s|%s|%s|%s|%x", sessionID, kind, op, id, sha256.Sum256(body))
}

// loaded is a fetched record reduced to what the form flow needs.
type loaded[A any] struct {
	record     any
	attrs      A
	dependents int
}

// formFlow is the save/delete lifecycle shared by the four forms. A is the
// attributes struct the form edits.
type formFlow[A any] struct {
	kind          models.EntityKind
	dependentType string
	sessionID     string
	guard         *SubmitGuard
	logger        *slog.Logger

	load      func(ctx context.Context, id string) (*loaded[A], error)
	validate  func(a *A, creating bool) error
	normalize func(a *A)

	// inherit copies fields the form does not edit (the owning relation)
	// from the stored record into a draft. Optional.
	inherit func(cur, draft *A)
}

// state evaluates a draft against defaults.
func (f *formFlow[A]) state(mode models.PanelMode, defaults, draft *A, dependents int) *models.FormState {
	err := f.validate(draft, mode.IsAdd())
	dirty := !reflect.DeepEqual(*defaults, *draft)
	return &models.FormState{
		Defaults:  defaults,
		Dirty:     dirty,
		Valid:     err == nil,
		Errors:    fieldErrors(err),
		CanSave:   dirty && err == nil,
		CanDelete: mode.IsEdit() && dependents == 0,
	}
}

// form loads defaults for the mode and evaluates the draft. A nil draft
// evaluates the defaults themselves.
func (f *formFlow[A]) form(ctx context.Context, mode models.PanelMode, draft *A) (*models.FormState, error) {
	defaults := new(A)
	dependents := 0
	if mode.IsEdit() {
		cur, err := f.load(ctx, mode.ID)
		if err != nil {
			return nil, err
		}
		defaults = &cur.attrs
		dependents = cur.dependents
	}
	if draft == nil {
		draft = defaults
	} else {
		f.normalize(draft)
		if mode.IsEdit() && f.inherit != nil {
			f.inherit(defaults, draft)
		}
	}
	return f.state(mode, defaults, draft, dependents), nil
}

// addForm evaluates a draft for an add form whose owner comes from the
// route. bind sets the owner on both the defaults and the draft, so the
// state matches what create will accept.
func (f *formFlow[A]) addForm(draft *A, bind func(a *A)) *models.FormState {
	defaults := new(A)
	bind(defaults)
	if draft == nil {
		draft = new(A)
	} else {
		f.normalize(draft)
	}
	bind(draft)
	return f.state(models.AddMode(), defaults, draft, 0)
}

// create validates, creates through the guard, and re-fetches the new record.
func (f *formFlow[A]) create(ctx context.Context, attrs *A, createFn func(ctx context.Context, a *A) (string, error)) (*models.SaveResult, error) {
	f.normalize(attrs)
	if err := f.validate(attrs, true); err != nil {
		return nil, asValidationError(err)
	}

	key := submitKey(f.sessionID, f.kind, "create", "", attrs)
	return f.guard.Do(ctx, key, func(ctx context.Context) (*models.SaveResult, error) {
		id, err := createFn(ctx, attrs)
		if err != nil {
			f.logger.Warn(f.kind.Singular()+" create failed", "error", err)
			return nil, fmt.Errorf("create %s: %w", f.kind.Singular(), err)
		}
		f.logger.Info(f.kind.Singular()+" created", "id", id)

		cur, err := f.load(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.SaveResult{
			Saved:    true,
			Record:   cur.record,
			Form:     f.state(models.EditMode(id), &cur.attrs, &cur.attrs, cur.dependents),
			Redirect: f.kind.RecordRoute(id),
		}, nil
	})
}

// update writes a dirty, valid draft. An unchanged draft is a no-op.
func (f *formFlow[A]) update(ctx context.Context, id string, attrs *A, updateFn func(ctx context.Context, id string, a *A) error) (*models.SaveResult, error) {
	f.normalize(attrs)
	cur, err := f.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.inherit != nil {
		f.inherit(&cur.attrs, attrs)
	}

	mode := models.EditMode(id)
	st := f.state(mode, &cur.attrs, attrs, cur.dependents)
	if !st.Dirty {
		return &models.SaveResult{Saved: false, Record: cur.record, Form: st}, nil
	}
	if !st.Valid {
		return nil, &domain.ValidationError{Message: "please correct the highlighted fields", Fields: st.Errors}
	}

	key := submitKey(f.sessionID, f.kind, "update", id, attrs)
	return f.guard.Do(ctx, key, func(ctx context.Context) (*models.SaveResult, error) {
		if err := updateFn(ctx, id, attrs); err != nil {
			f.logger.Warn(f.kind.Singular()+" update failed", "id", id, "error", err)
			return nil, fmt.Errorf("update %s: %w", f.kind.Singular(), err)
		}
		f.logger.Info(f.kind.Singular()+" updated", "id", id)

		next, err := f.load(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.SaveResult{
			Saved:  true,
			Record: next.record,
			Form:   f.state(mode, &next.attrs, &next.attrs, next.dependents),
		}, nil
	})
}

// remove re-reads the record, refuses while dependents exist, then deletes.
func (f *formFlow[A]) remove(ctx context.Context, id string, deleteFn func(ctx context.Context, id string) error) (*models.SaveResult, error) {
	cur, err := f.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.dependents > 0 {
		return nil, &domain.DependentsError{
			ResourceType:  f.kind.Singular(),
			ResourceID:    id,
			DependentType: f.dependentType,
			Count:         cur.dependents,
		}
	}

	key := submitKey(f.sessionID, f.kind, "delete", id, nil)
	return f.guard.Do(ctx, key, func(ctx context.Context) (*models.SaveResult, error) {
		if err := deleteFn(ctx, id); err != nil {
			f.logger.Warn(f.kind.Singular()+" delete failed", "id", id, "error", err)
			return nil, fmt.Errorf("delete %s: %w", f.kind.Singular(), err)
		}
		f.logger.Info(f.kind.Singular()+" deleted", "id", id)

		return &models.SaveResult{Saved: true, Redirect: f.kind.EntryRoute()}, nil
	})
}
