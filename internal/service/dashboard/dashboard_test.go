package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type MockOverviewStorage struct {
	mock.Mock
}

func (m *MockOverviewStorage) GetDampers(ctx context.Context, filter mysql.DamperFilter) ([]*storage.Damper, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Damper), args.Error(1)
}

func (m *MockOverviewStorage) GetDorses(ctx context.Context, search string) ([]*storage.Dorse, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Dorse), args.Error(1)
}

func (m *MockOverviewStorage) GetSasis(ctx context.Context, search string) ([]*storage.Sasi, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Sasi), args.Error(1)
}

func TestOverview(t *testing.T) {
	mockStorage := new(MockOverviewStorage)
	mockStorage.On("GetDampers", mock.Anything, mysql.DamperFilter{}).
		Return([]*storage.Damper{
			{Musteri: "A", PlazmaProgrami: true},
			{Musteri: "B"},
		}, nil)
	mockStorage.On("GetDorses", mock.Anything, "").
		Return([]*storage.Dorse{{Musteri: "C"}}, nil)
	mockStorage.On("GetSasis", mock.Anything, "").
		Return([]*storage.Sasi{}, nil)

	svc := New(mockStorage)

	overview, err := svc.Overview(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, overview.Damper.Total)
	assert.Equal(t, 1, overview.Damper.DevamEden)
	assert.Equal(t, 1, overview.Damper.Baslamayan)
	assert.Equal(t, 1, overview.Dorse.Total)
	assert.Zero(t, overview.Sasi.Total)

	mockStorage.AssertExpectations(t)
}

func TestOverview_FetchError(t *testing.T) {
	mockStorage := new(MockOverviewStorage)
	mockStorage.On("GetDampers", mock.Anything, mock.Anything).
		Return([]*storage.Damper{}, nil).Maybe()
	mockStorage.On("GetDorses", mock.Anything, "").
		Return(nil, errors.New("connection timeout"))
	mockStorage.On("GetSasis", mock.Anything, "").
		Return([]*storage.Sasi{}, nil).Maybe()

	svc := New(mockStorage)

	_, err := svc.Overview(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dorses")
}
