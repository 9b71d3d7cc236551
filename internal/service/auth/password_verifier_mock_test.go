package auth

import (
	"sync"
)

var _ passwordVerifier = &passwordVerifierMock{}

type passwordVerifierMock struct {
	CompareFunc func(hash string, password string) error

	calls struct {
		Compare []struct {
			Hash     string
			Password string
		}
	}
	lockCompare sync.RWMutex
}

func (mock *passwordVerifierMock) Compare(hash string, password string) error {
	if mock.CompareFunc == nil {
		panic("passwordVerifierMock.CompareFunc: method is nil but passwordVerifier.Compare was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password}
	mock.lockCompare.Lock()
	mock.calls.Compare = append(mock.calls.Compare, callInfo)
	mock.lockCompare.Unlock()
	return mock.CompareFunc(hash, password)
}

func (mock *passwordVerifierMock) CompareCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockCompare.RLock()
	calls := mock.calls.Compare
	mock.lockCompare.RUnlock()
	return calls
}
