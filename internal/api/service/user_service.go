package service

import (
	"context"
	"ctchen222/user-auth/internal/api/models"
	"ctchen222/user-auth/internal/api/repository"
	"ctchen222/user-auth/internal/auth"
	"ctchen222/user-auth/internal/events"
	"ctchen222/user-auth/internal/validator"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=mocks/user_service.go -package=mocks ctchen222/user-auth/internal/api/service UserService

var (
	tracer = otel.Tracer("service.user")
	meter  = otel.Meter("service.user")
)

// TokenState describes the Authorization header seen by Login.
type TokenState string

const (
	NoTokenProvided      TokenState = "NoTokenProvided"
	TokenProvidedValid   TokenState = "TokenProvidedValid"
	TokenProvidedInvalid TokenState = "TokenProvidedInvalid"
)

// WelcomeStatus is the status reported by Details.
const WelcomeStatus = "Welcome"

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest, authHeader string) (string, error)
	Details(ctx context.Context, authHeader string) (*models.DetailsResponse, error)
}

// unknownUserHash is compared against when the email has no account.
var unknownUserHash = sync.OnceValues(func() (string, error) {
	return repository.HashPassword(uuid.NewString())
})

type userService struct {
	userRepo        repository.UserRepository
	tokens          auth.TokenManager
	publisher       events.Publisher
	comparePassword func(hash, password string) error
	registrations   metric.Int64Counter
	logins          metric.Int64Counter
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(userRepo repository.UserRepository, tokens auth.TokenManager, publisher events.Publisher) (UserService, error) {
	registrations, err := meter.Int64Counter("users.registrations",
		metric.WithDescription("Registration attempts by result"))
	if err != nil {
		return nil, fmt.Errorf("failed to create registrations counter: %w", err)
	}
	logins, err := meter.Int64Counter("users.logins",
		metric.WithDescription("Login attempts by result and token state"))
	if err != nil {
		return nil, fmt.Errorf("failed to create logins counter: %w", err)
	}

	return &userService{
		userRepo:        userRepo,
		tokens:          tokens,
		publisher:       publisher,
		comparePassword: repository.ComparePassword,
		registrations:   registrations,
		logins:          logins,
	}, nil
}

// Register validates the input and stores a new user.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (err error) {
	ctx, span := tracer.Start(ctx, "UserService.Register")
	defer span.End()
	defer func() {
		s.registrations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", resultOf(err))))
	}()

	messages, err := validator.ValidateUserInput(ctx, req, s.userRepo)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validate input")
		return technicalError(err)
	}
	if len(messages) > 0 {
		span.SetAttributes(attribute.Int("validation.errors", len(messages)))
		return validationError(messages...)
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return validationError(validator.MsgEmailTaken)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "create user")
		return technicalError(err)
	}
	span.SetAttributes(attribute.Int64("user.id", user.ID))
	slog.InfoContext(ctx, "user registered", "user.id", user.ID)

	s.publish(ctx, events.TypeUserRegistered, events.UserRegisteredPayload{UserID: user.ID, Email: user.Email})
	return nil
}

// Login checks the credentials and returns a token: the one presented in
// authHeader when it is still valid for this user, a new one otherwise.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest, authHeader string) (token string, err error) {
	ctx, span := tracer.Start(ctx, "UserService.Login")
	defer span.End()

	state := NoTokenProvided
	defer func() {
		s.logins.Add(ctx, 1, metric.WithAttributes(
			attribute.String("result", resultOf(err)),
			attribute.String("token.state", string(state)),
		))
	}()

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get user")
		return "", technicalError(err)
	}
	if user == nil {
		// Unknown emails still cost one comparison.
		if hash, err := unknownUserHash(); err == nil {
			_ = s.comparePassword(hash, req.Password)
		}
		return "", notFoundError()
	}

	if err := s.comparePassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", notFoundError()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "compare password")
		return "", technicalError(err)
	}
	span.SetAttributes(attribute.Int64("user.id", user.ID))

	presented := s.tokens.Extract(authHeader)
	if presented != "" {
		state, err = s.checkPresentedToken(ctx, presented, user.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "validate token")
			return "", technicalError(err)
		}
	}
	span.SetAttributes(attribute.String("token.state", string(state)))

	token = presented
	if state != TokenProvidedValid {
		token, err = s.tokens.Generate(ctx, user)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generate token")
			return "", technicalError(err)
		}
	}
	slog.InfoContext(ctx, "user logged in", "user.id", user.ID, "token.state", string(state))

	s.publish(ctx, events.TypeUserLoggedIn, events.UserLoggedInPayload{UserID: user.ID, TokenState: string(state)})
	return token, nil
}

func (s *userService) checkPresentedToken(ctx context.Context, token string, userID int64) (TokenState, error) {
	claims, err := s.tokens.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return TokenProvidedInvalid, nil
		}
		return TokenProvidedInvalid, err
	}
	subject, err := claims.UserID()
	if err != nil || subject != userID {
		return TokenProvidedInvalid, nil
	}
	return TokenProvidedValid, nil
}

// Details answers the profile endpoint. The Authorization header is not inspected.
func (s *userService) Details(ctx context.Context, _ string) (*models.DetailsResponse, error) {
	_, span := tracer.Start(ctx, "UserService.Details")
	defer span.End()

	return &models.DetailsResponse{Status: WelcomeStatus}, nil
}

func (s *userService) publish(ctx context.Context, eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "event.type", eventType, "error", err)
		trace.SpanFromContext(ctx).AddEvent("publish failed", trace.WithAttributes(
			attribute.String("event.type", eventType),
		))
	}
}

// resultOf names the outcome of an operation for metrics.
func resultOf(err error) string {
	if err == nil {
		return "success"
	}
	return KindOf(err).String()
}
