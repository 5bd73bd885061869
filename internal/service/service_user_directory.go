package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/student-portal/internal/adapter"
	"github.com/MKhiriev/student-portal/internal/app"
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/models"
)

// usersRoute is where create and delete land after a successful refresh.
var usersRoute = []string{"admin", "users"}

type userDirectoryService struct {
	adapter adapter.UsersAdapter
	store   DirectoryStore

	loading   LoadingIndicator
	notifier  Notifier
	navigator Navigator

	logger *logger.Logger
}

// NewUserDirectoryService constructs a [UserDirectoryService] that calls the
// API through usersAdapter, publishes into store and drives the given UI
// collaborators.
func NewUserDirectoryService(
	usersAdapter adapter.UsersAdapter,
	store DirectoryStore,
	loading LoadingIndicator,
	notifier Notifier,
	navigator Navigator,
	logger *logger.Logger,
) UserDirectoryService {
	return &userDirectoryService{
		adapter:   usersAdapter,
		store:     store,
		loading:   loading,
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
	}
}

// ListUsers implements [UserDirectoryService].
func (s *userDirectoryService) ListUsers(ctx context.Context, adminID string) ([]models.User, error) {
	s.loading.Load()
	defer s.loading.Stop()

	env, err := s.adapter.ListUsers(ctx, models.ListUsersQuery{AdminID: adminID})
	if err != nil {
		s.logger.Err(err).Str("func", "userDirectoryService.ListUsers").Str("admin_id", adminID).Msg("failed to list users")
		return nil, fmt.Errorf("list users: %w", err)
	}

	if env.Success {
		s.store.SetUsers(env.Data)
	} else {
		s.logger.Warn().Str("func", "userDirectoryService.ListUsers").Str("message", env.Message).Msg("users api reported failure; directory left unchanged")
	}

	return env.Data, nil
}

// ListTeachers implements [UserDirectoryService].
func (s *userDirectoryService) ListTeachers(ctx context.Context, adminID string) ([]models.Teacher, error) {
	s.loading.Load()
	defer s.loading.Stop()

	env, err := s.adapter.ListUsers(ctx, models.ListUsersQuery{AdminID: adminID, Type: models.RoleTeacher})
	if err != nil {
		s.logger.Err(err).Str("func", "userDirectoryService.ListTeachers").Str("admin_id", adminID).Msg("failed to list teachers")
		return nil, fmt.Errorf("list teachers: %w", err)
	}

	teachers, err := models.LiftTeachers(env.Data)
	if err != nil {
		s.logger.Err(err).Str("func", "userDirectoryService.ListTeachers").Str("admin_id", adminID).Msg("failed to flatten teacher records")
		return nil, fmt.Errorf("list teachers: %w", err)
	}

	s.store.SetTeachers(teachers)
	return teachers, nil
}

// GetUser implements [UserDirectoryService].
func (s *userDirectoryService) GetUser(ctx context.Context, userID models.ID) (models.User, error) {
	s.loading.Load()
	defer s.loading.Stop()

	env, err := s.adapter.GetUser(ctx, userID)
	if err != nil {
		s.logger.Err(err).Str("func", "userDirectoryService.GetUser").Str("user_id", userID.String()).Msg("failed to get user")
		return models.User{}, fmt.Errorf("get user: %w", err)
	}

	return env.Data, nil
}

// CreateUser implements [UserDirectoryService].
func (s *userDirectoryService) CreateUser(ctx context.Context, user models.User, adminID string) error {
	user = user.Clone()
	user.Role = models.NormalizeRole(user.Role)

	s.loading.Load()
	_, err := s.adapter.CreateUser(ctx, adminID, user)
	s.loading.Stop()

	if err != nil {
		return s.fail(ctx, "create the "+user.Role.String(), fmt.Errorf("create user: %w", err))
	}

	return s.succeed(ctx, adminID, fmt.Sprintf(app.NotifyUserCreated, user.Role), func() {
		s.navigator.NavigateTo(usersRoute...)
	})
}

// DeleteUser implements [UserDirectoryService].
func (s *userDirectoryService) DeleteUser(ctx context.Context, user models.User, adminID string) error {
	s.loading.Load()
	_, err := s.adapter.DeleteUser(ctx, adminID, user.UserID)
	s.loading.Stop()

	if err != nil {
		return s.fail(ctx, "delete "+displayName(user), fmt.Errorf("delete user: %w", err))
	}

	return s.succeed(ctx, adminID, fmt.Sprintf(app.NotifyUserDeleted, user.FirstName, user.LastName), func() {
		s.navigator.NavigateTo(usersRoute...)
	})
}

// EditUser implements [UserDirectoryService].
func (s *userDirectoryService) EditUser(ctx context.Context, user models.User, adminID string) error {
	s.loading.Load()
	_, err := s.adapter.UpdateUser(ctx, adminID, user)
	s.loading.Stop()

	if err != nil {
		return s.fail(ctx, "edit "+displayName(user), fmt.Errorf("update user: %w", err))
	}

	return s.succeed(ctx, adminID, fmt.Sprintf(app.NotifyUserUpdated, user.FirstName, user.LastName), s.navigator.Back)
}

// SetUsers implements [UserDirectoryService].
func (s *userDirectoryService) SetUsers(users []models.User) {
	s.store.SetUsers(users)
}

// succeed shows message, waits for its dismissal, refreshes the user list and
// then navigates. Navigation happens only after a successful refresh.
func (s *userDirectoryService) succeed(ctx context.Context, adminID, message string, navigate func()) error {
	err := s.notifier.Notify(ctx, models.Notification{
		Message: message,
		Action:  app.ActionOK,
		Kind:    models.NotificationSuccess,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "userDirectoryService.succeed").Msg("notification was not dismissed")
		return fmt.Errorf("%w: %w", ErrNotificationAborted, err)
	}

	if _, err := s.ListUsers(ctx, adminID); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshAfterMutation, err)
	}

	navigate()
	return nil
}

// fail notifies the administrator that attempt did not succeed and returns
// cause. A notification error is logged and otherwise ignored.
func (s *userDirectoryService) fail(ctx context.Context, attempt string, cause error) error {
	s.logger.Err(cause).Str("func", "userDirectoryService.fail").Str("attempt", attempt).Msg("mutation failed")

	err := s.notifier.Notify(ctx, models.Notification{
		Message: fmt.Sprintf(app.NotifyMutationFailed, attempt, failureReason(cause)),
		Action:  app.ActionOK,
		Kind:    models.NotificationFailure,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn().Err(err).Str("func", "userDirectoryService.fail").Msg("failure notification was not shown")
	}

	return cause
}

// displayName prefers the full name and falls back to the USER_ID.
func displayName(u models.User) string {
	if name := u.FullName(); name != "" {
		return name
	}
	return "user " + u.UserID.String()
}
