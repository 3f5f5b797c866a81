package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/compliport/content-engine/app/cfg"
	"github.com/compliport/content-engine/app/content"
	"github.com/compliport/content-engine/app/source"
	"github.com/compliport/content-engine/app/store"
	"github.com/compliport/content-engine/app/tasks"
)

func NewHandler(configCache *source.ConfigCache, snapshot *store.Store,
	scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		configCache: configCache,
		snapshot:    snapshot,
		generator:   content.NewGenerator(),
		scheduler:   scheduler,
	}
}

// GetUpdates serves the chronological "latest updates" stream: optionally
// searched, then paginated. Search runs before pagination, and the page is
// clamped against the filtered collection so a stale page index can never
// point past its end.
func (h *Handler) GetUpdates(c *gin.Context) {
	query := c.Query("q")
	pageSize := h.pageSize(c)

	items := content.Search(h.snapshot.Feed(), query)

	totalPages := content.TotalPages(len(items), pageSize)
	page := content.ClampPage(h.requestedPage(c), totalPages)

	pageItems := content.Paginate(items, pageSize, page)

	// DisplayDate is computed per render pass, never stored.
	now := time.Now()
	for i := range pageItems {
		pageItems[i].DisplayDate = content.RelativeLabel(pageItems[i].Date, now)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        pageItems,
		"current_page": page,
		"total_pages":  totalPages,
		"total_items":  len(items),
		"sources":      h.sourceStatuses(),
		"updated_at":   h.updatedAt(),
	})
}

func (h *Handler) GetUpdatesRSS(c *gin.Context) {
	items := h.snapshot.Feed()

	rss, err := h.generator.Run(items, time.Now())
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(items)))

	c.String(http.StatusOK, rss)
}

// GetCatalog serves one category of the statutory catalog. The holidays
// category renders as the per-state calendar; everything else is a generic
// searched, paginated list.
func (h *Handler) GetCatalog(c *gin.Context) {
	categoryID := c.Query("category")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing category parameter"})
		return
	}

	partitioned := content.Partition(h.snapshot.Catalog(), categoryID)

	if content.IsHolidayCategory(categoryID) {
		groups := content.Regroup(partitioned)
		c.JSON(http.StatusOK, gin.H{
			"category":       categoryID,
			"holiday_groups": groups,
			"total_items":    len(partitioned),
			"updated_at":     h.updatedAt(),
		})
		return
	}

	query := c.Query("q")
	pageSize := h.pageSize(c)

	items := content.Filter(partitioned, query, func(item content.ResourceItem) []string {
		return []string{item.Title, item.Summary, item.Category, item.State}
	})

	totalPages := content.TotalPages(len(items), pageSize)
	page := content.ClampPage(h.requestedPage(c), totalPages)

	pageItems := content.Paginate(items, pageSize, page)

	// Catalog views show absolute dates, not relative labels.
	for i := range pageItems {
		pageItems[i].DisplayDate = content.FormatDMY(pageItems[i].Date)
	}

	c.JSON(http.StatusOK, gin.H{
		"category":     categoryID,
		"items":        pageItems,
		"current_page": page,
		"total_pages":  totalPages,
		"total_items":  len(items),
		"updated_at":   h.updatedAt(),
	})
}

func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": content.Categories(),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"ready":     h.snapshot.Ready(),
	}

	health["loaded_configurations"] = h.configCache.GetConfigCount()

	if h.snapshot.Ready() {
		health["snapshot_updated_at"] = h.snapshot.UpdatedAt().Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"feed_items":    len(h.snapshot.Feed()),
		"catalog_items": len(h.snapshot.Catalog()),
		"categories":    len(content.Categories()),
		"sources":       h.sourceStatuses(),
		"updated_at":    h.updatedAt(),
	})
}

func (h *Handler) APIListSources(c *gin.Context) {
	configs := h.configCache.GetConfigs()

	lastResults := make(map[string]content.SourceResult)
	for _, result := range h.snapshot.Results() {
		lastResults[result.Name] = result
	}

	sources := make([]map[string]interface{}, 0, len(configs))

	for _, sourceConfig := range configs {
		sourceInfo := map[string]interface{}{
			"name":             sourceConfig.Name,
			"type":             sourceConfig.Type,
			"url":              sourceConfig.URL,
			"enabled":          sourceConfig.Settings.Enabled,
			"max_items":        sourceConfig.Settings.MaxItems,
			"refresh_interval": (time.Duration(sourceConfig.Settings.RefreshInterval) * time.Second).String(),
			"extract_content":  sourceConfig.Settings.ExtractContent,
		}

		if result, ok := lastResults[sourceConfig.Name]; ok {
			sourceInfo["ok"] = result.OK()
			sourceInfo["item_count"] = len(result.Items)
			if result.Err != nil {
				sourceInfo["error"] = result.Err.Error()
			}
		}

		sources = append(sources, sourceInfo)
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"sources": sources,
		"total":   len(sources),
	})
}

func (h *Handler) APIRefresh(c *gin.Context) {
	if err := h.scheduler.EnqueueRefresh(); err != nil {
		slog.Error("Failed to enqueue snapshot refresh", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to schedule refresh", "details": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "refresh scheduled"})
}

func (h *Handler) requestedPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) pageSize(c *gin.Context) int {
	appCfg := cfg.Get()

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(appCfg.PageSize)))
	if err != nil || pageSize < 1 {
		return appCfg.PageSize
	}
	if pageSize > appCfg.MaxPageSize {
		return appCfg.MaxPageSize
	}
	return pageSize
}

func (h *Handler) sourceStatuses() []map[string]interface{} {
	results := h.snapshot.Results()

	statuses := make([]map[string]interface{}, 0, len(results))
	for _, result := range results {
		status := map[string]interface{}{
			"name":  result.Name,
			"type":  result.Type,
			"ok":    result.OK(),
			"items": len(result.Items),
		}
		if result.Err != nil {
			status["error"] = result.Err.Error()
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (h *Handler) updatedAt() string {
	if !h.snapshot.Ready() {
		return ""
	}
	return h.snapshot.UpdatedAt().Format(time.RFC3339)
}
