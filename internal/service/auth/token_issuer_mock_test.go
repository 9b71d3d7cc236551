package auth

import (
	"sync"
	"time"

	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(id ctxutil.Identity) (string, error)
	ExpiresInFunc           func() time.Duration

	calls struct {
		GenerateAccessToken []struct {
			ID ctxutil.Identity
		}
		ExpiresIn []struct{}
	}
	lockGenerateAccessToken sync.RWMutex
	lockExpiresIn           sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(id ctxutil.Identity) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		ID ctxutil.Identity
	}{ID: id}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(id)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	ID ctxutil.Identity
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) ExpiresIn() time.Duration {
	if mock.ExpiresInFunc == nil {
		panic("tokenIssuerMock.ExpiresInFunc: method is nil but tokenIssuer.ExpiresIn was just called")
	}
	mock.lockExpiresIn.Lock()
	mock.calls.ExpiresIn = append(mock.calls.ExpiresIn, struct{}{})
	mock.lockExpiresIn.Unlock()
	return mock.ExpiresInFunc()
}

func (mock *tokenIssuerMock) ExpiresInCalls() []struct{} {
	mock.lockExpiresIn.RLock()
	calls := mock.calls.ExpiresIn
	mock.lockExpiresIn.RUnlock()
	return calls
}
