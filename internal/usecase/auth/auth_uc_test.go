package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	ref *StoreRef
	err error
}

func (f *fakeFinder) FindByPhone(_ context.Context, _ string) (*StoreRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ref, nil
}

func TestVerifyPhone(t *testing.T) {
	uc := New(&fakeFinder{ref: &StoreRef{ID: "store-1", StoreName: "Corner Mart"}}, "secret", 60)

	otp, err := uc.VerifyPhone(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Equal(t, StubOTP, otp)
}

func TestVerifyPhone_BadPhone(t *testing.T) {
	uc := New(&fakeFinder{}, "secret", 60)

	for _, phone := range []string{"", "12345", "98765432101", "98765abcde"} {
		_, err := uc.VerifyPhone(context.Background(), phone)
		require.ErrorIs(t, err, ErrInvalidPhone, "phone %q", phone)
	}
}

func TestVerifyPhone_Unregistered(t *testing.T) {
	uc := New(&fakeFinder{err: ErrStoreNotFound}, "secret", 60)

	_, err := uc.VerifyPhone(context.Background(), "9876543210")
	require.ErrorIs(t, err, ErrStoreNotFound)
}

func TestLogin(t *testing.T) {
	uc := New(&fakeFinder{ref: &StoreRef{ID: "store-1", StoreName: "Corner Mart"}}, "secret", 60)

	out, err := uc.Login(context.Background(), "9876543210", StubOTP)
	require.NoError(t, err)
	require.Equal(t, "store-1", out.StoreID)
	require.Equal(t, "Corner Mart", out.StoreName)

	parsed, err := jwt.Parse(out.Token, func(tok *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, "store-1", claims["sub"])
	require.Equal(t, "store", claims["typ"])
	require.Equal(t, "Corner Mart", claims["storeName"])
	require.NotEmpty(t, claims["exp"])
}

func TestLogin_WrongOTP(t *testing.T) {
	uc := New(&fakeFinder{ref: &StoreRef{ID: "store-1"}}, "secret", 60)

	_, err := uc.Login(context.Background(), "9876543210", "000000")
	require.ErrorIs(t, err, ErrInvalidOTP)
}
