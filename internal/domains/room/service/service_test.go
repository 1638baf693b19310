package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	otelMocks "inn/infras/otel/mocks"
	"inn/internal/domains/room/mocks"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func newService(t *testing.T) (service.Room, *mocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	// Async cache writes may land after the test body returns.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *mocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "successful create",
			req:  dto.CreateRoomRequest{Description: "garden view double"},
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "insert fails",
			req:  dto.CreateRoomRequest{Description: "garden view double"},
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_GetAll_AppliesQueryDefaults(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, constant.DefaultValuePage, params.Page)
			assert.Equal(t, constant.DefaultValueLimit, params.Limit)
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
			assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

			return []model.Room{{ID: 1, Description: "single"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestRoomService_Get(t *testing.T) {
	room := model.Room{
		ID:          7,
		Description: "corner suite",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func(repo *mocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			id:   7,
			setupMock: func(repo *mocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(repo *mocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   7,
			setupMock: func(repo *mocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), tt.id)
			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, room.ID, res.ID)
			assert.Equal(t, room.Description, res.Description)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		id        int64
		setupMock func(repo *mocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update stamps audit fields",
			req:  dto.UpdateRoomRequest{Description: "renovated corner suite"},
			id:   7,
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "renovated corner suite", fields["description"])
						assert.Equal(t, constant.SystemUser, fields[constant.FieldModifiedBy])
						assert.Contains(t, fields, constant.FieldModifiedAt)

						return nil
					})
			},
		},
		{
			name: "unknown room",
			req:  dto.UpdateRoomRequest{Description: "renovated corner suite"},
			id:   99,
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "existence check fails",
			req:  dto.UpdateRoomRequest{Description: "renovated corner suite"},
			id:   7,
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Update(context.Background(), tt.req, tt.id)
			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		setupMock func(repo *mocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			id:   7,
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown room",
			id:   99,
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Delete(context.Background(), tt.id)
			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
