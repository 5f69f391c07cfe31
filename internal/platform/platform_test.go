package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstancePortIsStableAndInRange(t *testing.T) {
	port := instancePort("Pomodoro")
	assert.Equal(t, port, instancePort("Pomodoro"))
	assert.GreaterOrEqual(t, port, minInstancePort)
	assert.LessOrEqual(t, port, maxInstancePort)
}

func TestSecondAcquireFails(t *testing.T) {
	first, err := acquireOn("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = first.Release() }()

	_, err = acquireOn(first.Address())
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	assert.Empty(t, first.Address())
	assert.NoError(t, first.Release())

	var nilGuard *InstanceGuard
	assert.NoError(t, nilGuard.Release())
}

func TestGetConfigDirFallsBackToHome(t *testing.T) {
	service := &platformService{
		userConfigDir: func() (string, error) { return "", errors.New("unset") },
		userHomeDir:   func() (string, error) { return "/home/tester", nil },
	}
	dir, err := service.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, fallbackConfigDir("/home/tester"), dir)
}

func TestGetConfigDirPrefersUserConfig(t *testing.T) {
	service := &platformService{
		userConfigDir: func() (string, error) { return "/etc/cfg", nil },
		userHomeDir:   func() (string, error) { return "", errors.New("unused") },
	}
	dir, err := service.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/etc/cfg", dir)
}

func TestGetConfigDirFailsWithoutHome(t *testing.T) {
	service := &platformService{
		userConfigDir: func() (string, error) { return "", errors.New("no config") },
		userHomeDir:   func() (string, error) { return "", errors.New("no home") },
	}
	_, err := service.GetConfigDir()
	assert.Error(t, err)
}
