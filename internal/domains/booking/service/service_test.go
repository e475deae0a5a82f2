package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/service"
	cacheMocks "lodge/shared/cache/mocks"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

func testBooking(guestID string) model.Booking {
	return model.Booking{
		ID:            "booking-id",
		Reference:     "LDG-AB12CD34EF",
		GuestID:       guestID,
		GuestName:     "Jordan Reyes",
		GuestEmail:    "jordan@example.com",
		HotelID:       "hotel-id",
		HotelName:     "Seaside Lodge",
		RoomID:        "room-id",
		RoomType:      "suite",
		CheckIn:       timezone.Now(),
		CheckOut:      timezone.Now().AddDate(0, 0, 3),
		Adults:        2,
		RoomRate:      200,
		Nights:        3,
		Taxes:         72,
		Fees:          25,
		Total:         697,
		Status:        model.StatusUpcoming,
		PaymentStatus: model.PaymentStatusCompleted,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}
}

func TestBookingService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockEventRepo := bookingMocks.NewMockTimelineEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEventRepo, cfg, mockCache, mockOtel)

	params := gDto.QueryParams{Limit: 10, Page: 1}

	tests := []struct {
		name      string
		status    string
		setupMock func()
		wantErr   bool
		wantData  int
	}{
		{
			name:   "successful get without status filter",
			status: "",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{testBooking("guest-id")}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantData: 1,
		},
		{
			name:   "successful get filtered by status",
			status: model.StatusUpcoming,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{testBooking("guest-id")}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantData: 1,
		},
		{
			name:      "unknown status",
			status:    "postponed",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:   "cache hit",
			status: "",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantData: 0,
		},
		{
			name:   "count error",
			status: "",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetMine(context.Background(), "guest-id", tt.status, params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantData, result.TotalData)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockEventRepo := bookingMocks.NewMockTimelineEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEventRepo, cfg, mockCache, mockOtel)

	events := []model.TimelineEvent{
		{
			ID:         "event-1",
			BookingID:  "booking-id",
			Type:       model.EventTypeCreated,
			Title:      "Booking confirmed",
			OccurredAt: timezone.Now(),
		},
		{
			ID:         "event-2",
			BookingID:  "booking-id",
			Type:       model.EventTypePayment,
			Title:      "Payment received",
			OccurredAt: timezone.Now().Add(1),
		},
	}

	tests := []struct {
		name      string
		guestID   string
		setupMock func()
		wantErr   bool
		cached    bool
	}{
		{
			name:    "successful get renders the timeline",
			guestID: "guest-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("guest-id"), nil)

				mockEventRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(events, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:    "cache hit",
			guestID: "guest-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			cached:  true,
		},
		{
			name:    "booking owned by another guest reads as not found",
			guestID: "intruder-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("guest-id"), nil)
			},
			wantErr: true,
		},
		{
			name:    "booking not found",
			guestID: "guest-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name:    "event with an unknown type fails the render",
			guestID: "guest-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("guest-id"), nil)

				mockEventRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.TimelineEvent{
						{ID: "event-x", BookingID: "booking-id", Type: "telepathy", OccurredAt: timezone.Now()},
					}, nil)
			},
			wantErr: true,
		},
		{
			name:    "event repository error",
			guestID: "guest-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("guest-id"), nil)

				mockEventRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.guestID, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.cached {
				return
			}

			assert.Equal(t, "booking-id", result.ID)
			// two stored events plus the synthetic journey marker
			assert.Len(t, result.Timeline, 3)
			assert.True(t, result.Timeline[0].Emphasized)
			assert.True(t, result.Timeline[2].Terminal)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockEventRepo := bookingMocks.NewMockTimelineEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEventRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "already cancelled booking conflicts",
			setupMock: func() {
				cancelled := testBooking("guest-id")
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "completed booking cannot be cancelled",
			setupMock: func() {
				completed := testBooking("guest-id")
				completed.Status = model.StatusCompleted

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "transaction begin error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testBooking("guest-id"), nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), "guest-id", "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
