package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/nilotpaul/fanlift-auth/config"
	"github.com/nilotpaul/fanlift-auth/setting"
	"github.com/nilotpaul/fanlift-auth/types"
	"github.com/stretchr/testify/assert"
)

// Mock Directory
type MockDirectory struct{}

func (d *MockDirectory) FindUsersByEmail(context.Context, string) ([]types.User, error) {
	return nil, nil
}

func (d *MockDirectory) CreateUser(context.Context, types.CreateUserParams) (*types.User, error) {
	return nil, nil
}

func (d *MockDirectory) GenerateSessionToken(context.Context, string) (string, error) {
	return "", nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	assert.NotNil(t, r)
	assert.Empty(t, r.Directories)
}

func TestRegistry_RegisterAndGetDirectory(t *testing.T) {
	r := NewRegistry()

	mockDirectory := &MockDirectory{}

	// Registering a backend
	r.Register("mock_backend", mockDirectory)
	assert.Equal(t, len(r.Directories), 1)

	// Getting a non-existent backend
	d, err := r.GetDirectory("non-existent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `user backend "non-existent" not found`)
	assert.Nil(t, d)

	// Getting the Mock backend
	md, err := r.GetDirectory("mock_backend")
	assert.NoError(t, err)
	assert.Equal(t, mockDirectory, md)

	// Adding another Mock backend
	r.Register("mock_backend_2", mockDirectory)
	newMd, err := r.GetDirectory("mock_backend")
	assert.NoError(t, err)
	assert.Equal(t, mockDirectory, newMd)
	assert.Equal(t, len(r.Directories), 2)
}

func TestInitStore(t *testing.T) {
	// No DB connection means only base44 is available.
	var db *sql.DB

	r := InitStore(config.EnvConfig{}, db, nil)
	d, err := r.GetDirectory(setting.Base44Backend)
	assert.NoError(t, err)
	assert.IsType(t, &Base44Store{}, d)

	pd, err := r.GetDirectory(setting.PostgresBackend)
	assert.Error(t, err)
	assert.Nil(t, pd)
	assert.Equal(t, len(r.Directories), 1)

	// A (never dialed) DB handle registers postgres too.
	db = &sql.DB{}
	r = InitStore(config.EnvConfig{}, db, nil)
	pd, err = r.GetDirectory(setting.PostgresBackend)
	assert.NoError(t, err)
	assert.IsType(t, &PostgresStore{}, pd)
	assert.Equal(t, len(r.Directories), 2)
}
