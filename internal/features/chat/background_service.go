package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"teamboard/internal/config"
)

const retentionSweepInterval = 1 * time.Hour

// RetentionBackgroundService sweeps expired messages for all projects.
// The read path already prunes lazily; this keeps storage bounded for
// chats nobody opens anymore.
type RetentionBackgroundService struct {
	chatRepository *ChatRepository
	logger         *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (s *RetentionBackgroundService) StartWorkers() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("Starting chat retention worker",
		slog.Duration("interval", retentionSweepInterval))

	s.wg.Add(1)
	go s.retentionWorker()
}

func (s *RetentionBackgroundService) ExecuteAllTasksForTest() error {
	return s.sweepExpiredMessages()
}

func (s *RetentionBackgroundService) retentionWorker() {
	defer s.wg.Done()

	ticker := time.NewTicker(retentionSweepInterval)
	defer ticker.Stop()

	for {
		if config.IsShouldShutdown() {
			s.logger.Info("Chat retention worker shutting down due to shutdown signal")
			return
		}

		select {
		case <-s.ctx.Done():
			s.logger.Info("Chat retention worker shutting down")
			return

		case <-ticker.C:
			if err := s.sweepExpiredMessages(); err != nil {
				s.logger.Error("Error during chat retention sweep", slog.String("error", err.Error()))
			}
		}
	}
}

func (s *RetentionBackgroundService) sweepExpiredMessages() error {
	pruned, err := s.chatRepository.PruneAllExpired(DefaultAutoDeleteDays)
	if err != nil {
		return fmt.Errorf("failed to prune expired messages: %w", err)
	}

	if pruned > 0 {
		s.logger.Info("Chat retention sweep completed", slog.Int64("prunedMessages", pruned))
	}

	return nil
}
