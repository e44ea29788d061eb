package services

import (
	"errors"
	"strings"
	"time"

	"plateful/entity"
	"plateful/repository"
	"plateful/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and profile management.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

var registrableRoles = map[string]bool{
	entity.RoleCustomer: true,
	entity.RoleOwner:    true,
	entity.RoleDriver:   true,
}

type RegisterIn struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// Register creates a user. Admin accounts are seeded, never registered.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !registrableRoles[role] {
		return nil, errors.New("invalid role")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: utils.NormalizePhone(in.Phone),
		Role:        role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// IssueSession mints a JWT for an already-verified user (OTP flow).
func (s *AuthService) IssueSession(user *entity.User) (string, error) {
	return utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile writes the mutable profile fields only.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	allowed := map[string]bool{
		"first_name": true, "last_name": true, "phone_number": true,
		"address": true, "district": true, "city": true,
	}
	filtered := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) > 0 {
		if err := s.userRepo.Update(userID, filtered); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(userID)
}
