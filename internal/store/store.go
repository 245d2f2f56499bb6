// internal/store/store.go
package store

import (
	"context"
	"errors"
	"sync"

	"afcare-client/internal/common/logger"
	"afcare-client/internal/common/validation"
)

// Repository is the data-access contract every entity service satisfies.
// The controller decides when to reload; the repository never does.
type Repository[T any] interface {
	List(ctx context.Context, filters map[string]string) ([]T, error)
	Create(ctx context.Context, draft T) (*T, error)
	Update(ctx context.Context, id int, draft T) (*T, error)
	Delete(ctx context.Context, id int) error
}

// Modal is the view-state machine every entity page shares. One modal at a
// time, no nesting.
type Modal int

const (
	ModalNone Modal = iota
	ModalCreate
	ModalEdit
	ModalView
)

// ErrValidation is returned when a submit is blocked by client-side field
// validation, before any network call.
var ErrValidation = errors.New("draft validation failed")

// ErrNotConfirmed is returned when the user declines a delete confirmation.
var ErrNotConfirmed = errors.New("delete not confirmed")

// Validator checks a draft before submit and reports field-level errors.
type Validator[T any] func(draft T) *validation.Result

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(id int) bool

// Store manages the view-state lifecycle for one collection: load the full
// collection, open a modal, submit, reload. The collection is a snapshot in
// server order, valid only until the next Load; mutations always trigger a
// full reload rather than a local patch.
type Store[T any] struct {
	repo     Repository[T]
	logger   logger.Logger
	validate Validator[T]
	confirm  ConfirmFunc

	mu          sync.Mutex
	collection  []T
	isLoading   bool
	activeModal Modal
	draft       *T
	editID      int
	subject     *T
	filters     map[string]string
	fieldErrors []validation.FieldError

	pageCtx    context.Context
	cancelPage context.CancelFunc
	generation uint64
}

type Options[T any] struct {
	Repo      Repository[T]
	Logger    logger.Logger
	Validator Validator[T]
	Confirm   ConfirmFunc
}

func New[T any](opts Options[T]) *Store[T] {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Store[T]{
		repo:     opts.Repo,
		logger:   log,
		validate: opts.Validator,
		confirm:  opts.Confirm,
		filters:  map[string]string{},
	}
}

// Activate scopes all fetches to one page visit. Deactivate cancels the
// returned context, so a fetch resolving after the page is gone can neither
// complete its request nor touch state.
func (s *Store[T]) Activate(parent context.Context) context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelPage != nil {
		s.cancelPage()
	}
	s.pageCtx, s.cancelPage = context.WithCancel(parent)
	s.generation++
	return s.pageCtx
}

// Deactivate cancels outstanding fetches and drops transient view state.
// The last loaded collection is kept only as scratch; the next Activate
// starts from a fresh fetch.
func (s *Store[T]) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelPage != nil {
		s.cancelPage()
		s.cancelPage = nil
		s.pageCtx = nil
	}
	s.generation++
	s.activeModal = ModalNone
	s.draft = nil
	s.subject = nil
	s.fieldErrors = nil
}

// Load re-fetches the full collection with the current filters. On failure
// the previous collection stays, the failure is logged, and the error is
// returned for the caller to surface or ignore.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.isLoading = true
	gen := s.generation
	filters := make(map[string]string, len(s.filters))
	for k, v := range s.filters {
		filters[k] = v
	}
	s.mu.Unlock()

	items, err := s.repo.List(ctx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// Page was deactivated (or re-activated) while the fetch was in
		// flight; the result belongs to a dead view.
		return ctx.Err()
	}

	s.isLoading = false
	if err != nil {
		s.logger.Error("collection load failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	s.collection = items
	return nil
}

// Collection returns a copy of the current snapshot in server order.
func (s *Store[T]) Collection() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.collection))
	copy(out, s.collection)
	return out
}

func (s *Store[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *Store[T]) ActiveModal() Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeModal
}

// FieldErrors returns the validation errors from the last rejected submit.
func (s *Store[T]) FieldErrors() []validation.FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrors
}

// SetFilter records a filter field and immediately re-issues Load. No
// debounce; collections are assumed small.
func (s *Store[T]) SetFilter(ctx context.Context, field, value string) error {
	s.mu.Lock()
	if value == "" {
		delete(s.filters, field)
	} else {
		s.filters[field] = value
	}
	s.mu.Unlock()

	return s.Load(ctx)
}

// OpenCreate opens the create modal with an empty draft.
func (s *Store[T]) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var empty T
	s.activeModal = ModalCreate
	s.draft = &empty
	s.fieldErrors = nil
}

// Draft exposes the open modal's draft for field edits. Nil when no create
// or edit modal is open.
func (s *Store[T]) Draft() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SubmitCreate validates the draft, creates it, then closes the modal and
// reloads. On any failure the modal stays open with the draft intact.
func (s *Store[T]) SubmitCreate(ctx context.Context) error {
	s.mu.Lock()
	if s.activeModal != ModalCreate || s.draft == nil {
		s.mu.Unlock()
		return errors.New("no create modal open")
	}
	draft := *s.draft
	s.mu.Unlock()

	if err := s.runValidation(draft); err != nil {
		return err
	}

	if _, err := s.repo.Create(ctx, draft); err != nil {
		s.logger.Error("create failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.closeModal()
	return s.Load(ctx)
}

// OpenEdit opens the edit modal pre-populated from the selected entity.
func (s *Store[T]) OpenEdit(id int, entity T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := entity
	s.activeModal = ModalEdit
	s.draft = &draft
	s.editID = id
	s.fieldErrors = nil
}

func (s *Store[T]) SubmitEdit(ctx context.Context) error {
	s.mu.Lock()
	if s.activeModal != ModalEdit || s.draft == nil {
		s.mu.Unlock()
		return errors.New("no edit modal open")
	}
	draft := *s.draft
	id := s.editID
	s.mu.Unlock()

	if err := s.runValidation(draft); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, id, draft); err != nil {
		s.logger.Error("update failed", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return err
	}

	s.closeModal()
	return s.Load(ctx)
}

// Delete requires an interactive confirmation, then deletes and reloads.
func (s *Store[T]) Delete(ctx context.Context, id int) error {
	if s.confirm != nil && !s.confirm(id) {
		return ErrNotConfirmed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete failed", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return err
	}

	return s.Load(ctx)
}

// OpenView is a pure display toggle with no network effect.
func (s *Store[T]) OpenView(entity T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subject := entity
	s.activeModal = ModalView
	s.subject = &subject
}

func (s *Store[T]) CloseView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeModal == ModalView {
		s.activeModal = ModalNone
		s.subject = nil
	}
}

// Viewing returns the entity shown in the view modal, if open.
func (s *Store[T]) Viewing() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subject
}

// CloseModal abandons whatever modal is open without submitting.
func (s *Store[T]) CloseModal() {
	s.closeModal()
}

func (s *Store[T]) closeModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeModal = ModalNone
	s.draft = nil
	s.subject = nil
	s.fieldErrors = nil
}

func (s *Store[T]) runValidation(draft T) error {
	if s.validate == nil {
		return nil
	}
	result := s.validate(draft)
	if result == nil || result.Valid {
		return nil
	}

	s.mu.Lock()
	s.fieldErrors = result.Errors
	s.mu.Unlock()
	return ErrValidation
}
