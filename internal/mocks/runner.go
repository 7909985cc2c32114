package mocks

import (
	"github.com/TheLeggett/Summer-Breeze/internal/deployer"
	"github.com/stretchr/testify/mock"
)

// MockRunner implements deployer.Runner for testing across packages
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(args ...string) deployer.Result {
	callArgs := make([]interface{}, len(args))
	for i, a := range args {
		callArgs[i] = a
	}
	ret := m.Called(callArgs...)
	return ret.Get(0).(deployer.Result)
}

var _ deployer.Runner = (*MockRunner)(nil)
