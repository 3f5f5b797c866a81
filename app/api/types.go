package api

import (
	"time"

	"github.com/compliport/content-engine/app/content"
	"github.com/compliport/content-engine/app/source"
	"github.com/compliport/content-engine/app/store"
	"github.com/compliport/content-engine/app/tasks"
)

type GeneratorInterface interface {
	Run(items []content.FeedItem, now time.Time) (string, error)
}

var _ GeneratorInterface = (*content.Generator)(nil)

type Handler struct {
	configCache *source.ConfigCache
	snapshot    *store.Store
	generator   GeneratorInterface
	scheduler   tasks.TaskSchedulerInterface
}
