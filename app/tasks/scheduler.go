package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/compliport/content-engine/app/cfg"
	"github.com/compliport/content-engine/app/content"
	"github.com/compliport/content-engine/app/source"
	"github.com/compliport/content-engine/app/store"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	configCache *source.ConfigCache
	client      *source.Client
	rssAdapter  *source.RSSAdapter
	normalizer  *content.Normalizer
	extractor   *content.Extractor
	snapshot    *store.Store
	httpClient  *http.Client
	userAgent   string
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(configCache *source.ConfigCache, snapshot *store.Store, httpClient *http.Client) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		configCache: configCache,
		client:      source.NewClient(httpClient, cfg.UserAgent),
		rssAdapter:  source.NewRSSAdapter(httpClient, cfg.UserAgent),
		normalizer:  content.NewNormalizer(cfg.PortalBaseUrl),
		extractor:   content.NewExtractor(),
		snapshot:    snapshot,
		httpClient:  httpClient,
		userAgent:   cfg.UserAgent,
		interval:    time.Duration(cfg.RefreshInterval) * time.Second,
		workerCount: cfg.WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueRefresh()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueRefresh()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// EnqueueRefresh schedules an immediate snapshot refresh (also used by the
// admin API).
func (s *Scheduler) EnqueueRefresh() error {
	return s.EnqueueTask(NewRefreshSnapshotTask(s.buildAggregator(), s.snapshot))
}

func (s *Scheduler) enqueueRefresh() {
	sourceConfigs := s.configCache.GetEnabledConfigs()
	if len(sourceConfigs) == 0 {
		slog.Debug("No enabled source configurations found")
		return
	}

	slog.Debug("Scheduling snapshot refresh", "sources", len(sourceConfigs))

	if err := s.EnqueueRefresh(); err != nil {
		slog.Warn("Failed to enqueue RefreshSnapshotTask", "error", err)
		return
	}

	for _, sourceConfig := range sourceConfigs {
		if !sourceConfig.Settings.ExtractContent {
			continue
		}

		extractTask := NewExtractContentTask(sourceConfig.Name, sourceConfig, s.httpClient, s.extractor, s.snapshot, s.userAgent)
		if err := s.EnqueueTask(extractTask); err != nil {
			slog.Warn("Failed to enqueue ExtractContentTask", "source", sourceConfig.Name, "error", err)
		}
	}
}

// typeRank fixes the canonical source order: the feed's tie-break on equal
// dates follows this order, so it must not depend on map iteration.
var typeRank = map[string]int{
	source.TypeResource:     0,
	source.TypeLabourLaw:    1,
	source.TypeBlog:         2,
	source.TypeNotification: 3,
}

func (s *Scheduler) buildAggregator() *content.Aggregator {
	configs := make([]*source.Config, 0)
	for _, sourceConfig := range s.configCache.GetEnabledConfigs() {
		configs = append(configs, sourceConfig)
	}

	sort.Slice(configs, func(i, j int) bool {
		if typeRank[configs[i].Type] != typeRank[configs[j].Type] {
			return typeRank[configs[i].Type] < typeRank[configs[j].Type]
		}
		return configs[i].Name < configs[j].Name
	})

	sources := make([]content.Source, 0, len(configs))
	for _, sourceConfig := range configs {
		sourceType, ok := content.SourceTypeFromString(sourceConfig.Type)
		if !ok {
			slog.Warn("Skipping source with unknown type", "source", sourceConfig.Name, "type", sourceConfig.Type)
			continue
		}

		fetch := s.fetchFuncFor(sourceConfig)
		sources = append(sources, content.Source{
			Name:  sourceConfig.Name,
			Type:  sourceType,
			Fetch: fetch,
		})
	}

	return content.NewAggregator(s.normalizer, sources)
}

func (s *Scheduler) fetchFuncFor(sourceConfig *source.Config) content.FetchFunc {
	if sourceConfig.Type == source.TypeNotification {
		return func(ctx context.Context) ([]source.RawRecord, error) {
			return s.rssAdapter.FetchRecords(ctx, sourceConfig)
		}
	}
	return func(ctx context.Context) ([]source.RawRecord, error) {
		return s.client.FetchRecords(ctx, sourceConfig)
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.CanRetry() {
			task.IncrementRetryCount()
			retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "source", task.GetSourceName(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			go func() {
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}
