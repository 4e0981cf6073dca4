package auth

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidPhone  = errors.New("phone number must be exactly 10 digits")
	ErrInvalidOTP    = errors.New("invalid otp")
	ErrStoreNotFound = errors.New("store not registered")
)

// StubOTP is the fixed development OTP; real SMS delivery sits outside this
// service's boundary.
const StubOTP = "123456"

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

type StoreRef struct {
	ID        string
	StoreName string
}

type StoreFinder interface {
	FindByPhone(ctx context.Context, phone string) (*StoreRef, error)
}

type LoginResult struct {
	Token     string `json:"token"`
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
}

type Usecase struct {
	finder    StoreFinder
	jwtSecret []byte
	expMin    int
}

func New(finder StoreFinder, jwtSecret string, expiresMinutes int) *Usecase {
	if expiresMinutes <= 0 {
		expiresMinutes = 60
	}
	return &Usecase{
		finder:    finder,
		jwtSecret: []byte(jwtSecret),
		expMin:    expiresMinutes,
	}
}

// VerifyPhone checks registration for a phone and hands back the stub OTP.
func (u *Usecase) VerifyPhone(ctx context.Context, phone string) (string, error) {
	if !phoneRe.MatchString(phone) {
		return "", ErrInvalidPhone
	}
	if _, err := u.finder.FindByPhone(ctx, phone); err != nil {
		return "", err
	}
	return StubOTP, nil
}

func (u *Usecase) Login(ctx context.Context, phone, otp string) (*LoginResult, error) {
	if !phoneRe.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if otp != StubOTP {
		return nil, ErrInvalidOTP
	}

	store, err := u.finder.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       store.ID,
		"typ":       "store",
		"storeName": store.StoreName,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Duration(u.expMin) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     signed,
		StoreID:   store.ID,
		StoreName: store.StoreName,
	}, nil
}
