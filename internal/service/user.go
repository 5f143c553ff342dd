package service

import (
	"FarmKeeper/internal/auth"
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultRole is assigned when registration omits the role.
const DefaultRole = "user"

// UserService handles registration, login and account management.
type UserService struct {
	repo       repo.UserRepository
	authSecret string
}

func NewUserService(r repo.UserRepository, authSecret string) *UserService {
	return &UserService{repo: r, authSecret: authSecret}
}

// Register creates an account with a bcrypt password hash. The role
// defaults to "user" when empty.
func (s *UserService) Register(ctx context.Context, email, password, role string) (*model.User, error) {
	if email == "" {
		return nil, &MissingFieldError{Field: "email"}
	}
	if password == "" {
		return nil, &MissingFieldError{Field: "password"}
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = DefaultRole
	}

	return s.repo.Create(ctx, &model.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
	})
}

// Login checks the credentials and issues a bearer token embedding the
// user id. Unknown email and wrong password both come back as
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.NewToken(s.authSecret, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// List returns all users. Password hashes never serialize (json:"-").
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Update applies only the supplied fields.
func (s *UserService) Update(ctx context.Context, id uint, email, role *string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if email != nil {
		user.Email = *email
	}
	if role != nil {
		user.Role = *role
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
