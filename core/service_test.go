package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingService notes start/stop calls into a shared log
type recordingService struct {
	name     string
	log      *[]string
	startErr error
}

func (s *recordingService) Start(ctx context.Context) error {
	*s.log = append(*s.log, "start:"+s.name)
	return s.startErr
}

func (s *recordingService) Stop() {
	*s.log = append(*s.log, "stop:"+s.name)
}

func TestRegistry_StartsInRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	log := []string{}
	registry.Register(&recordingService{name: "a", log: &log})
	registry.Register(&recordingService{name: "b", log: &log})
	registry.Register(&recordingService{name: "c", log: &log})

	require.NoError(t, registry.StartAll(context.Background()))
	assert.Equal(t, []string{"start:a", "start:b", "start:c"}, log)
}

func TestRegistry_StopsInReverseOrder(t *testing.T) {
	registry := NewRegistry()
	log := []string{}
	registry.Register(&recordingService{name: "a", log: &log})
	registry.Register(&recordingService{name: "b", log: &log})
	registry.Register(&recordingService{name: "c", log: &log})

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()

	assert.Equal(t, []string{"stop:c", "stop:b", "stop:a"}, log[3:])
}

func TestRegistry_StartFailureRollsBack(t *testing.T) {
	registry := NewRegistry()
	log := []string{}
	registry.Register(&recordingService{name: "a", log: &log})
	registry.Register(&recordingService{name: "b", log: &log, startErr: errors.New("bind failed")})
	registry.Register(&recordingService{name: "c", log: &log})

	err := registry.StartAll(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "bind failed")

	// a started and was rolled back, c never started
	assert.Equal(t, []string{"start:a", "start:b", "stop:a"}, log)
}

func TestRegistry_EmptyRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()
}
