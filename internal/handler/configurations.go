package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/runtime"
)

// ConfigurationListResponse lists the registered configuration names
type ConfigurationListResponse struct {
	Configurations []string `json:"configurations"`
}

// LookupsResponse carries a configuration's lookup names by category
type LookupsResponse struct {
	Configuration string                       `json:"configuration"`
	Lookups       map[domain.Category][]string `json:"lookups"`
}

// ConfigurationsHandler handles configuration discovery requests
type ConfigurationsHandler struct {
	registry *runtime.Registry
}

// NewConfigurationsHandler creates a new configurations handler
func NewConfigurationsHandler(registry *runtime.Registry) *ConfigurationsHandler {
	return &ConfigurationsHandler{registry: registry}
}

// HandleList lists registered configurations
// @Summary List configurations
// @Description List the configuration names that exports and imports can target
// @Tags configurations
// @Produce json
// @Success 200 {object} ConfigurationListResponse
// @Router /api/v1/configurations [get]
func (h *ConfigurationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ConfigurationListResponse{
		Configurations: h.registry.Names(),
	})
}

// HandleLookups returns a configuration's lookup snapshot
// @Summary Get configuration lookups
// @Description Read the configuration's current lookup names for every reference category
// @Tags configurations
// @Produce json
// @Param name path string true "Configuration name"
// @Success 200 {object} LookupsResponse
// @Failure 404 {object} ErrorResponse "Configuration not found"
// @Router /api/v1/configurations/{name}/lookups [get]
func (h *ConfigurationsHandler) HandleLookups(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "Missing configuration name")
		return
	}

	cfg, err := h.registry.Get(name)
	if err != nil {
		respondServiceError(w, r, ErrMsgReadLookupsFailed, err)
		return
	}

	snapshot, err := cfg.Lookups(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgReadLookupsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, LookupsResponse{
		Configuration: cfg.Name(),
		Lookups:       snapshot.ByCategory(),
	})
}
