// Package services contains server-side business logic. This file implements
// RegistrationService, which creates an account and issues its first access
// token.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/logging"
	"github.com/dmitrijs2005/devconnector/internal/server/credentials"
	"github.com/dmitrijs2005/devconnector/internal/server/models"
	"github.com/dmitrijs2005/devconnector/internal/server/repositories/accounts"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// State is a step of a registration attempt.
type State int

const (
	StateValidated State = iota
	StateChecked
	StateDrafted
	StateHashed
	StatePersisted
	StateIssued
	StateDone
	StateError
)

var stateNames = [...]string{"validated", "checked", "drafted", "hashed", "persisted", "issued", "done", "error"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

const (
	msgNameRequired  = "Name is required"
	msgInvalidEmail  = "Please include a valid email"
	msgShortPassword = "Please enter a password with 6 or more characters"

	minPasswordLength = 6
)

// fieldOrder fixes the order in which violations are reported.
var fieldOrder = []string{"name", "email", "password"}

// TokenIssuer mints a bearer token for an account.
type TokenIssuer interface {
	Issue(accountID string) (string, error)
}

// AvatarResolver derives an avatar reference from an email address.
type AvatarResolver interface {
	Resolve(email string) string
}

// Recorder receives the outcome and duration of every registration attempt.
type Recorder interface {
	ObserveRegistration(outcome string, elapsed time.Duration)
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResult struct {
	Token   string
	Account *models.Account
}

// RegistrationService runs the registration flow:
// validate, check for an existing account, draft, hash, persist, issue.
type RegistrationService struct {
	accounts accounts.Repository
	hasher   credentials.Hasher
	avatars  AvatarResolver
	tokens   TokenIssuer
	log      logging.Logger
	recorder Recorder
	now      func() time.Time
}

type Option func(*RegistrationService)

// WithRecorder reports every attempt to r.
func WithRecorder(r Recorder) Option {
	return func(s *RegistrationService) { s.recorder = r }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *RegistrationService) { s.log = l.With("module", "registration") }
}

func NewRegistrationService(repo accounts.Repository, hasher credentials.Hasher, avatars AvatarResolver, tokens TokenIssuer, opts ...Option) *RegistrationService {
	s := &RegistrationService{
		accounts: repo,
		hasher:   hasher,
		avatars:  avatars,
		tokens:   tokens,
		log:      logging.Nop{},
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Register creates an account and returns a token for it.
//
// The error is nil, a *ViolationError (bad input or existing account) or an
// *InternalError. The plaintext password is never logged.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	start := s.now()
	res, err := s.register(ctx, in)

	if s.recorder != nil {
		s.recorder.ObserveRegistration(Outcome(err), s.now().Sub(start))
	}

	var ie *InternalError
	switch {
	case err == nil:
		s.log.Info(ctx, "account registered", "email", in.Email, "account_id", res.Account.ID)
	case errors.As(err, &ie):
		s.log.Error(ctx, "registration failed", "email", in.Email, "state", ie.State.String(), "error", ie.Err)
	default:
		s.log.Info(ctx, "registration rejected", "email", in.Email, "outcome", Outcome(err))
	}

	return res, err
}

func (s *RegistrationService) register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := s.accounts.FindByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, conflict()
	case err != nil && !errors.Is(err, common.ErrorNotFound):
		return nil, &InternalError{State: StateChecked, Err: err}
	}

	draft := &models.Account{
		Name:      in.Name,
		Email:     in.Email,
		AvatarRef: s.avatars.Resolve(in.Email),
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, &InternalError{State: StateHashed, Err: err}
	}
	draft.CredentialHash = hash

	// the write completes or fails as a whole even if the caller goes away
	account, err := s.accounts.Create(context.WithoutCancel(ctx), draft)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, conflict()
		}
		return nil, &InternalError{State: StatePersisted, Err: err}
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, &InternalError{State: StateIssued, Err: err}
	}

	return &RegisterResult{Token: token, Account: account}, nil
}

func conflict() error {
	return &ViolationError{
		Kind:       KindConflict,
		Violations: []Violation{{Field: "email", Message: common.ConflictMessage}},
	}
}

func validateInput(in RegisterInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error(msgNameRequired)),
		validation.Field(&in.Email,
			validation.Required.Error(msgInvalidEmail),
			is.Email.Error(msgInvalidEmail)),
		validation.Field(&in.Password,
			validation.Required.Error(msgShortPassword),
			validation.RuneLength(minPasswordLength, 0).Error(msgShortPassword)),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return &InternalError{State: StateValidated, Err: err}
	}

	ve := &ViolationError{Kind: KindInvalidInput}
	for _, field := range fieldOrder {
		if fe, ok := fieldErrs[field]; ok {
			ve.Violations = append(ve.Violations, Violation{Field: field, Message: fe.Error()})
		}
	}
	return ve
}
