package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"riminspect/config"
	"riminspect/infras/otel/mocks"
	s3Mocks "riminspect/infras/s3/mocks"
	inspectionMocks "riminspect/internal/domains/inspection/mocks"
	"riminspect/internal/domains/inspection/model"
	"riminspect/internal/domains/inspection/model/dto"
	"riminspect/internal/domains/inspection/service"
	scheduleMocks "riminspect/internal/domains/schedule/mocks"
	cacheMocks "riminspect/shared/cache/mocks"
	"riminspect/shared/clock"
	"riminspect/shared/constant"
	gDto "riminspect/shared/dto"
	"riminspect/shared/failure"
)

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "inspection-images"

	return cfg
}

func operatorContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOperator, "test-operator")
}

func TestInspectionService_Create(t *testing.T) {
	fixedNow := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)

	imageHeader := &multipart.FileHeader{Filename: "rim.jpg"}
	imageFile := fakeFile{bytes.NewReader([]byte("image-bytes"))}

	tests := []struct {
		name      string
		req       dto.CreateInspectionRequest
		setupMock func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3)
		wantErr   bool
		wantCode  int
		wantImage string
	}{
		{
			name: "successful creation without image",
			req: dto.CreateInspectionRequest{
				RimID:       "rim-42",
				IsDefect:    true,
				Description: "crack on the outer lip",
			},
			setupMock: func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3) {
				schedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inspection model.Inspection) error {
						assert.Equal(t, "schedule-1", inspection.ScheduleID)
						assert.Equal(t, "rim-42", inspection.RimID)
						assert.True(t, inspection.IsDefect)
						assert.Equal(t, fixedNow, inspection.InspectedAt)

						return nil
					})
			},
		},
		{
			name: "successful creation with image upload",
			req: dto.CreateInspectionRequest{
				RimID:     "rim-42",
				Image:     imageHeader,
				ImageFile: imageFile,
			},
			setupMock: func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3) {
				schedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

				s3.EXPECT().
					UploadFile(gomock.Any(), "inspection-images", model.EntityName, imageFile, imageHeader, "schedule-1_rim.jpg").
					Return("https://cdn.example.com/inspection/schedule-1_rim.jpg", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inspection model.Inspection) error {
						assert.Equal(t, "https://cdn.example.com/inspection/schedule-1_rim.jpg", inspection.ImageURL)

						return nil
					})
			},
			wantImage: "https://cdn.example.com/inspection/schedule-1_rim.jpg",
		},
		{
			name: "schedule not found",
			req:  dto.CreateInspectionRequest{RimID: "rim-42"},
			setupMock: func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3) {
				schedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "rim already inspected",
			req:  dto.CreateInspectionRequest{RimID: "rim-42"},
			setupMock: func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3) {
				schedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "racing duplicate caught by unique constraint",
			req:  dto.CreateInspectionRequest{RimID: "rim-42"},
			setupMock: func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3) {
				schedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "image upload failure",
			req: dto.CreateInspectionRequest{
				RimID:     "rim-42",
				Image:     imageHeader,
				ImageFile: imageFile,
			},
			setupMock: func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3) {
				schedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload failed"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.CreateInspectionRequest{RimID: "rim-42"},
			setupMock: func(repo *inspectionMocks.MockInspection, schedRepo *scheduleMocks.MockSchedule, s3 *s3Mocks.MockS3) {
				schedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := inspectionMocks.NewMockInspection(ctrl)
			mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockS3 := s3Mocks.NewMockS3(ctrl)

			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(mockRepo, mockScheduleRepo, mockS3)

			svc := service.New(
				mockRepo,
				mockScheduleRepo,
				testConfig(),
				mockCache,
				mocks.NewOtel(),
				clock.Fixed{Instant: fixedNow},
				mockS3,
			)

			res, err := svc.Create(operatorContext(), "schedule-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "rim-42", res.RimID)
			assert.Equal(t, tt.wantImage, res.ImageURL)
		})
	}
}

func TestInspectionService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := inspectionMocks.NewMockInspection(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Inspection, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, model.FieldScheduleID)
			assert.Equal(t, "schedule-1", args[model.FieldScheduleID])

			return []model.Inspection{{ID: "inspection-1", ScheduleID: "schedule-1", RimID: "rim-42"}}, nil
		})

	svc := service.New(
		mockRepo,
		mockScheduleRepo,
		testConfig(),
		mockCache,
		mocks.NewOtel(),
		clock.Fixed{Instant: time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)},
		mockS3,
	)

	res, err := svc.GetAll(operatorContext(), "schedule-1", gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Inspections, 1)
}

func TestInspectionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := inspectionMocks.NewMockInspection(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Inspection{}, nil)

	svc := service.New(
		mockRepo,
		mockScheduleRepo,
		testConfig(),
		mockCache,
		mocks.NewOtel(),
		clock.Fixed{Instant: time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)},
		mockS3,
	)

	_, err := svc.Get(operatorContext(), "missing")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
