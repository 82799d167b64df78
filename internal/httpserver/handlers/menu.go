package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/menu"
	"github.com/MrSnakeDoc/envf/internal/metric"
	"github.com/MrSnakeDoc/envf/internal/page"
	redisstore "github.com/MrSnakeDoc/envf/internal/store/redis"
)

type toolsResponse struct {
	menu.Tools
	HTML template.HTML `json:"html"`
}

type settingsResponse struct {
	Links []menu.ActionLink `json:"links"`
	Empty bool              `json:"empty"`
	HTML  template.HTML     `json:"html"`
}

// buildFunc composes one menu. It returns the response, the outcome label and a render error.
type buildFunc func(p *page.Page) (any, string, error)

// Tools composes the tools menu of the posted page.
func Tools(d deps.Deps) http.HandlerFunc {
	return menuHandler(d, "tools", func(p *page.Page) (any, string, error) {
		tools := d.Composer.Tools(p)
		if tools.MenuItems == nil {
			tools.MenuItems = []menu.Item{}
		}
		html, err := d.Renderer.Tools(tools)
		if err != nil {
			return nil, metric.OutcomeRenderError, err
		}
		outcome := metric.OutcomeOK
		if !tools.HasItems {
			outcome = metric.OutcomeEmpty
		}
		return toolsResponse{Tools: tools, HTML: html}, outcome, nil
	})
}

// Settings composes the contextual settings menu of the posted page.
func Settings(d deps.Deps) http.HandlerFunc {
	return menuHandler(d, "settings", func(p *page.Page) (any, string, error) {
		m := d.Composer.Settings(p, page.NewCapabilitySet(p.Capabilities))
		html, err := d.Renderer.ActionMenu(m)
		if err != nil {
			return nil, metric.OutcomeRenderError, err
		}
		links := m.Links
		if links == nil {
			links = []menu.ActionLink{}
		}
		outcome := metric.OutcomeOK
		if m.Empty() {
			outcome = metric.OutcomeEmpty
		}
		return settingsResponse{Links: links, Empty: m.Empty(), HTML: html}, outcome, nil
	})
}

func menuHandler(d deps.Deps, kind string, build buildFunc) http.HandlerFunc {
	caching := d.MenuCache != nil && d.MenuCacheTTL > 0

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := d.Logger.With(logger.String("menu", kind))

		body, err := readBody(w, r)
		if err != nil {
			d.Metrics.Builds.Increment(kind, metric.OutcomeBadRequest)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		key := redisstore.MenuCacheKey(kind, body)
		if caching {
			cached, err := d.MenuCache.GetCachedMenu(ctx, key)
			switch {
			case err != nil:
				d.Metrics.Cache.Increment(metric.CacheError)
				log.Warn("menu cache lookup failed", logger.Error(err))
			case cached != nil:
				d.Metrics.Cache.Increment(metric.CacheHit)
				writeRaw(w, http.StatusOK, cached)
				return
			default:
				d.Metrics.Cache.Increment(metric.CacheMiss)
			}
		}

		p, err := decodePage(body)
		if err != nil {
			d.Metrics.Builds.Increment(kind, metric.OutcomeBadRequest)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp, outcome, err := build(p)
		d.Metrics.Builds.Increment(kind, outcome)
		if err != nil {
			log.Error("failed to render menu", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to render menu")
			return
		}

		payload, err := json.Marshal(resp)
		if err != nil {
			log.Error("failed to encode menu", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to encode menu")
			return
		}
		payload = append(payload, '\n')

		if caching {
			if err := d.MenuCache.CacheMenu(ctx, key, payload, d.MenuCacheTTL); err != nil {
				log.Warn("failed to cache menu", logger.Error(err))
			}
		}

		writeRaw(w, http.StatusOK, payload)
	}
}
