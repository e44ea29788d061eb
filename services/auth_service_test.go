package services

import (
	"testing"
	"time"

	"plateful/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	u, err := svc.Register(&RegisterIn{Email: "Jo@Example.com", Password: "longenough", Role: "owner"})
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", u.Email)
	assert.Equal(t, "owner", u.Role)
	assert.NotEqual(t, "longenough", u.Password)

	token, got, err := svc.Login("jo@example.com", "longenough")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, got.ID)

	_, _, err = svc.Login("jo@example.com", "wrong")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmailAndAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterIn{Email: "a@b.co", Password: "longenough"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterIn{Email: "a@b.co", Password: "longenough"})
	assert.Error(t, err)

	_, err = svc.Register(&RegisterIn{Email: "c@d.co", Password: "longenough", Role: "admin"})
	assert.Error(t, err)
}

func TestUpdateProfileIgnoresUnknownColumns(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	u, err := svc.Register(&RegisterIn{Email: "p@q.co", Password: "longenough"})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(u.ID, map[string]any{
		"city": "Lyon",
		"role": "admin", // not a profile field, silently dropped
	})
	require.NoError(t, err)
	assert.Equal(t, "Lyon", got.City)
	assert.Equal(t, "customer", got.Role)
}

type captureSender struct{ code string }

func (s *captureSender) Send(phone, code string) error {
	s.code = code
	return nil
}

func newOTPService(db *gorm.DB, sender SMSSender) *OTPService {
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo, "test-secret", time.Hour)
	return NewOTPService(repository.NewOTPRepository(db), userRepo, auth, sender)
}

func TestOTPVerifyCreatesCustomerAccount(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := newOTPService(db, sender)

	_, err := svc.Request(&OTPRequestIn{Phone: "+33 6 12 34 56 78"})
	require.NoError(t, err)
	require.Len(t, sender.code, 6)

	out, err := svc.Verify(&OTPVerifyIn{Phone: "+33612345678", Code: sender.code})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "customer", out.User.Role)
	assert.Equal(t, "+33612345678", out.User.PhoneNumber)

	// the challenge is consumed, replaying the code fails
	_, err = svc.Verify(&OTPVerifyIn{Phone: "+33612345678", Code: sender.code})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestOTPWrongCodeBumpsAttempts(t *testing.T) {
	db := newTestDB(t)
	sender := &captureSender{}
	svc := newOTPService(db, sender)

	_, err := svc.Request(&OTPRequestIn{Phone: "+33611111111"})
	require.NoError(t, err)

	for i := 0; i < otpMaxAttempts; i++ {
		_, err = svc.Verify(&OTPVerifyIn{Phone: "+33611111111", Code: "000000"})
		assert.ErrorIs(t, err, ErrInvalidOTP)
	}

	// attempts exhausted: even the right code is dead now
	_, err = svc.Verify(&OTPVerifyIn{Phone: "+33611111111", Code: sender.code})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestOTPRejectsMalformedPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newOTPService(db, &captureSender{})

	_, err := svc.Request(&OTPRequestIn{Phone: "abc"})
	assert.Error(t, err)
}
