package impl

import (
	"context"
	"testing"
	"time"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/domain/service"
	mockRepo "arthurflix/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStatsService(t *testing.T) (*statsService, *mockRepo.MockDownloadStatRepository) {
	repo := mockRepo.NewMockDownloadStatRepository(t)

	return NewStatsService(StatsServiceParams{StatsRepo: repo, Logger: discardLogger()}).(*statsService), repo
}

func sampleEvent() *service.DownloadEvent {
	return &service.DownloadEvent{
		ItemID:     uuid.NewString(),
		Quality:    "HD",
		Kind:       "direct",
		Token:      "AbCdEf123456",
		OccurredAt: time.Now(),
	}
}

func TestStatsService_RecordDownload(t *testing.T) {
	srv, repo := newTestStatsService(t)
	ctx := context.Background()
	event := sampleEvent()

	repo.EXPECT().
		Increment(ctx, mock.MatchedBy(func(s *entity.DownloadStat) bool {
			return s.ItemID.String() == event.ItemID &&
				s.Quality == entity.QualityHD &&
				s.Kind == entity.DownloadKindDirect &&
				s.Count == 1
		})).
		Return(nil)

	require.NoError(t, srv.RecordDownload(ctx, event))
}

func TestStatsService_RecordDownload_UnknownItemDropped(t *testing.T) {
	srv, repo := newTestStatsService(t)
	ctx := context.Background()

	repo.EXPECT().Increment(ctx, mock.Anything).Return(repository.ErrItemNotFound)

	assert.NoError(t, srv.RecordDownload(ctx, sampleEvent()))
}

func TestStatsService_RecordDownload_StoreError(t *testing.T) {
	srv, repo := newTestStatsService(t)
	ctx := context.Background()

	repo.EXPECT().Increment(ctx, mock.Anything).Return(errors.New("connection refused"))

	err := srv.RecordDownload(ctx, sampleEvent())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStatsService_RecordDownload_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *service.DownloadEvent)
	}{
		{name: "item id", mutate: func(e *service.DownloadEvent) { e.ItemID = "not-a-uuid" }},
		{name: "quality", mutate: func(e *service.DownloadEvent) { e.Quality = "4K" }},
		{name: "kind", mutate: func(e *service.DownloadEvent) { e.Kind = "torrent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestStatsService(t)
			event := sampleEvent()
			tt.mutate(event)

			err := srv.RecordDownload(context.Background(), event)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	t.Run("nil event", func(t *testing.T) {
		srv, _ := newTestStatsService(t)

		assert.ErrorIs(t, srv.RecordDownload(context.Background(), nil), domainerrors.ErrValidationFailed)
	})
}
