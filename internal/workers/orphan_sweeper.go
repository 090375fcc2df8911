package workers

import (
	"context"
	"time"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/store"
)

// OrphanPostSweeper periodically deletes diary posts whose owner row no
// longer exists. On backends that enforce foreign keys the sweep finds
// nothing; it is a safety net for backends where enforcement is off.
type OrphanPostSweeper struct {
	posts    store.PostRepository
	interval time.Duration
	logger   *logger.Logger
}

func NewOrphanPostSweeper(posts store.PostRepository, interval time.Duration, logger *logger.Logger) *OrphanPostSweeper {
	return &OrphanPostSweeper{
		posts:    posts,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately. The loop runs for the lifetime of the process.
func (s *OrphanPostSweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			s.sweep(context.Background())
		}
	}()
}

func (s *OrphanPostSweeper) sweep(ctx context.Context) {
	swept, err := s.posts.DeleteOrphanPosts(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*OrphanPostSweeper.sweep").Msg("error sweeping orphan posts")
		return
	}

	if swept > 0 {
		s.logger.Info().Str("func", "*OrphanPostSweeper.sweep").Int64("swept", swept).Msg("orphan posts deleted")
	}
}
