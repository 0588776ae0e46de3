package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webfleet-dev/webfleet/internal/config"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
	"github.com/webfleet-dev/webfleet/internal/provisioning"
)

type provisionerMock struct {
	err    error
	called int
}

func (m *provisionerMock) Provision(_ *provisioning.Context) error {
	m.called++
	return m.err
}

func swapDestroyFactories(t *testing.T, mock *provisionerMock) {
	t.Helper()

	origLoad := loadConfigFile
	origManager := newManager
	origProvisioner := newDestroyProvisioner
	t.Cleanup(func() {
		loadConfigFile = origLoad
		newManager = origManager
		newDestroyProvisioner = origProvisioner
	})

	loadConfigFile = func(_ string) (*config.Config, error) {
		return config.Default("demo"), nil
	}
	newManager = func() (azure.Manager, error) {
		return &azure.MockClient{}, nil
	}
	newDestroyProvisioner = func() Provisioner {
		return mock
	}
}

func TestDestroy(t *testing.T) {
	mock := &provisionerMock{}
	swapDestroyFactories(t, mock)

	err := Destroy(context.Background(), "webfleet.yaml")
	require.NoError(t, err)
	require.Equal(t, 1, mock.called)
}

func TestDestroy_PropagatesError(t *testing.T) {
	mock := &provisionerMock{err: errors.New("deletion stuck")}
	swapDestroyFactories(t, mock)

	err := Destroy(context.Background(), "webfleet.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "destroy failed")
}

func TestDestroy_ConfigError(t *testing.T) {
	mock := &provisionerMock{}
	swapDestroyFactories(t, mock)
	loadConfigFile = func(_ string) (*config.Config, error) {
		return nil, errors.New("bad config")
	}

	err := Destroy(context.Background(), "webfleet.yaml")
	require.Error(t, err)
	require.Equal(t, 0, mock.called)
}
