package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"plateful/entity"
	"plateful/repository"
	"plateful/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SMSSender delivers a one-time code. The real implementation talks to the
// SMS provider; dev setups log the code instead.
type SMSSender interface {
	Send(phone, code string) error
}

type LogSender struct{}

func (LogSender) Send(phone, code string) error {
	log.Printf("OTP for %s: %s", phone, code)
	return nil
}

const (
	otpTTL         = 5 * time.Minute
	otpMaxAttempts = 5
)

type OTPService struct {
	Repo     *repository.OTPRepository
	UserRepo *repository.UserRepository
	Auth     *AuthService
	Sender   SMSSender
}

func NewOTPService(repo *repository.OTPRepository, userRepo *repository.UserRepository, auth *AuthService, sender SMSSender) *OTPService {
	return &OTPService{Repo: repo, UserRepo: userRepo, Auth: auth, Sender: sender}
}

type OTPRequestIn struct {
	Phone  string `json:"phone" binding:"required"`
	Action string `json:"action" binding:"omitempty,oneof=login register"`
}

// Request creates a challenge and hands the code to the SMS sender. Only the
// bcrypt hash is stored.
func (s *OTPService) Request(in *OTPRequestIn) (string, error) {
	phone := utils.NormalizePhone(in.Phone)
	if !utils.ValidPhone(phone) {
		return "", errors.New("malformed phone number")
	}

	code, err := randomCode()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	c := &entity.OTPCode{
		RequestID: uuid.NewString(),
		Phone:     phone,
		Action:    in.Action,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.Repo.Create(c); err != nil {
		return "", err
	}
	if err := s.Sender.Send(phone, code); err != nil {
		return "", err
	}
	return c.RequestID, nil
}

type OTPVerifyIn struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required,len=6"`
}

type OTPVerifyOut struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Verify consumes the newest pending challenge and issues a session. A phone
// with no account yet gets a customer account created on the spot.
func (s *OTPService) Verify(in *OTPVerifyIn) (*OTPVerifyOut, error) {
	phone := utils.NormalizePhone(in.Phone)

	c, err := s.Repo.FindPending(phone, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}
	if c.Attempts >= otpMaxAttempts {
		return nil, ErrInvalidOTP
	}
	if bcrypt.CompareHashAndPassword([]byte(c.CodeHash), []byte(in.Code)) != nil {
		_ = s.Repo.BumpAttempts(c.ID)
		return nil, ErrInvalidOTP
	}
	if affected, err := s.Repo.Consume(c.ID); err != nil {
		return nil, err
	} else if affected == 0 {
		return nil, ErrInvalidOTP
	}

	user, err := s.UserRepo.FindByPhone(phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &entity.User{
			Email:       phone + "@phone.local",
			PhoneNumber: phone,
			Role:        entity.RoleCustomer,
		}
		if err := s.UserRepo.Create(user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	token, err := s.Auth.IssueSession(user)
	if err != nil {
		return nil, err
	}
	return &OTPVerifyOut{Token: token, User: user}, nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
