package service

import (
	"context"
	"errors"
	"strings"

	"CampusVault/internal/cache"
	"CampusVault/internal/dto"
	"CampusVault/internal/repo"
	"CampusVault/model"
	"CampusVault/utils"

	"gorm.io/gorm"
)

const defaultFieldOfStudy = "General Studies"

// UserService manages accounts and credential checks.
type UserService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewUserService creates a user service.
func NewUserService(db *gorm.DB, c *cache.Cache) *UserService {
	return &UserService{db: db, cache: c}
}

// Register validates input, enforces uniqueness and creates the account.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	fields := map[string]string{}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		fields["email"] = "Valid email is required"
	}
	if len(req.Username) < 3 {
		fields["username"] = "Username must be at least 3 characters"
	}
	if len(req.Password) < 8 {
		fields["password"] = "Password must be at least 8 characters"
	}
	if req.FullName == "" {
		fields["full_name"] = "Full name is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Message: "Email already exists"}
	}
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Message: "Username already exists"}
	}

	hash, err := utils.GetPwd(req.Password)
	if err != nil {
		return nil, err
	}
	fieldOfStudy := req.FieldOfStudy
	if fieldOfStudy == "" {
		fieldOfStudy = defaultFieldOfStudy
	}
	user := &model.User{
		Email:        req.Email,
		UserName:     req.Username,
		FullName:     req.FullName,
		FieldOfStudy: fieldOfStudy,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// Two registrations racing past the pre-check land here.
		if repo.IsDuplicateEntry(err) {
			return nil, &ConflictError{Message: "Email or username already exists"}
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email and password. Failure is uniform so callers
// cannot tell a missing account from a wrong password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPwd(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetByID loads one user.
func (s *UserService) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	if cached, ok := s.cache.GetUserInfo(ctx, id); ok {
		return cached, nil
	}
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.cache.SetUserInfo(ctx, &user)
	return &user, nil
}

// ListAll returns every registered user.
func (s *UserService) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
