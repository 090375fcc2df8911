package workers

import (
	"github.com/adilzhm/travel-diary/internal/config"
	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers from config.
// Workers whose configuration disables them are simply not created.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := new(Workers)

	if cfg.SweepInterval > 0 {
		w.workers = append(w.workers, NewOrphanPostSweeper(storages.PostRepository, cfg.SweepInterval, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
