package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestSink_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	pool := NewWorkerPool(1, 4)
	sink := NewSink(repo, pool)

	stored := make(chan *domain.SystemLog, 1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.SystemLog) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.NoError(t, ctx.Err())
			stored <- entry
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	sink.Write(ctx, domain.LogWarn, "code already used")
	cancel()

	select {
	case entry := <-stored:
		assert.Equal(t, domain.LogWarn, entry.Level)
		assert.Equal(t, "code already used", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("audit entry was not stored")
	}
	pool.Close()
}

func TestSink_WriteFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	pool := NewWorkerPool(1, 1)
	sink := NewSink(repo, pool)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	assert.NotPanics(t, func() {
		sink.Write(context.Background(), domain.LogError, "purchase failed")
	})
	pool.Close()
}

func TestSink_WriteAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := NewWorkerPool(1, 1)
	pool.Close()

	sink := NewSink(NewMockRepo(ctrl), pool)
	assert.NotPanics(t, func() {
		sink.Write(context.Background(), domain.LogInfo, "late entry")
	})
}

func TestSink_ListLogs(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "Default limit", limit: 0, expected: DefaultLimit},
		{name: "Custom limit", limit: 20, expected: 20},
		{name: "Capped limit", limit: 10000, expected: MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepo(ctrl)
			repo.EXPECT().ListRecent(gomock.Any(), tt.expected).Return([]domain.SystemLog{{ID: 1}}, nil)

			logs, err := NewSink(repo, NewWorkerPool(1, 1)).ListLogs(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Len(t, logs, 1)
		})
	}
}
