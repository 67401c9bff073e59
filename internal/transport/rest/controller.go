package rest

//go:generate mockgen -source=controller.go -destination=mocks_test.go -package=rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/isbleu/concept/internal/model"
)

const maxBodyBytes = 1 << 20

type ConceptService interface {
	ListConcepts(ctx context.Context) ([]model.Concept, error)
	GetConcept(ctx context.Context, id string) (model.Concept, error)
	CreateConcept(ctx context.Context, name string, stocks []model.ConceptStock) (model.Concept, error)
	UpdateConcept(ctx context.Context, id, name string, stocks []model.ConceptStock) (model.Concept, error)
	DeleteConcept(ctx context.Context, id string) error
	ListTrash(ctx context.Context) ([]model.Concept, error)
	RestoreConcept(ctx context.Context, id string) (model.Concept, error)
	PurgeConcept(ctx context.Context, id string) error
	GetConceptQuotes(ctx context.Context, id string) (model.ConceptQuotes, error)
	GetStockQuote(ctx context.Context, code, mkt string) (model.Quote, error)
	ExportConcepts(ctx context.Context) (content []byte, filename string, err error)
}

type ChartService interface {
	Minute(ctx context.Context, code string) model.Chart[model.MinuteSeries]
	Daily(ctx context.Context, code string) model.Chart[model.DailySeries]
}

type Controller struct {
	concepts ConceptService
	charts   ChartService
	now      func() time.Time
}

func NewController(concepts ConceptService, charts ChartService) *Controller {
	return &Controller{
		concepts: concepts,
		charts:   charts,
		now:      time.Now,
	}
}

type conceptRequest struct {
	Name   string               `json:"name"`
	Stocks []model.ConceptStock `json:"stocks"`
}

func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": c.now().UTC().Format(time.RFC3339Nano),
	})
}

func (c *Controller) ListConcepts(w http.ResponseWriter, r *http.Request) {
	concepts, err := c.concepts.ListConcepts(r.Context())
	if err != nil {
		respondServiceError(w, r, "Controller.ListConcepts", err)
		return
	}
	respondData(w, concepts, "")
}

func (c *Controller) GetConcept(w http.ResponseWriter, r *http.Request) {
	concept, err := c.concepts.GetConcept(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, "Controller.GetConcept", err)
		return
	}
	respondData(w, concept, "")
}

func (c *Controller) CreateConcept(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConceptRequest(w, r)
	if !ok {
		return
	}

	concept, err := c.concepts.CreateConcept(r.Context(), req.Name, req.Stocks)
	if err != nil {
		respondServiceError(w, r, "Controller.CreateConcept", err)
		return
	}

	respondData(w, concept, fmt.Sprintf("成功创建概念\"%s\"，找到 %d 只成分股", concept.Name, len(concept.Stocks)))
}

func (c *Controller) UpdateConcept(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConceptRequest(w, r)
	if !ok {
		return
	}

	concept, err := c.concepts.UpdateConcept(r.Context(), mux.Vars(r)["id"], req.Name, req.Stocks)
	if err != nil {
		respondServiceError(w, r, "Controller.UpdateConcept", err)
		return
	}

	respondData(w, concept, fmt.Sprintf("已更新概念\"%s\"，找到 %d 只成分股", concept.Name, len(concept.Stocks)))
}

func (c *Controller) DeleteConcept(w http.ResponseWriter, r *http.Request) {
	if err := c.concepts.DeleteConcept(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, r, "Controller.DeleteConcept", err)
		return
	}
	respondData(w, nil, "概念已删除")
}

func (c *Controller) ListTrash(w http.ResponseWriter, r *http.Request) {
	concepts, err := c.concepts.ListTrash(r.Context())
	if err != nil {
		respondServiceError(w, r, "Controller.ListTrash", err)
		return
	}
	respondData(w, concepts, "")
}

func (c *Controller) RestoreConcept(w http.ResponseWriter, r *http.Request) {
	concept, err := c.concepts.RestoreConcept(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, "Controller.RestoreConcept", err)
		return
	}
	respondData(w, concept, "概念已恢复")
}

func (c *Controller) PurgeConcept(w http.ResponseWriter, r *http.Request) {
	if err := c.concepts.PurgeConcept(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, r, "Controller.PurgeConcept", err)
		return
	}
	respondData(w, nil, "概念已永久删除")
}

func (c *Controller) GetConceptQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := c.concepts.GetConceptQuotes(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, "Controller.GetConceptQuotes", err)
		return
	}
	respondData(w, quotes, "")
}

func (c *Controller) GetStockQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := c.concepts.GetStockQuote(r.Context(), mux.Vars(r)["code"], r.URL.Query().Get("market"))
	if err != nil {
		respondServiceError(w, r, "Controller.GetStockQuote", err)
		return
	}
	respondData(w, quote, "")
}

func (c *Controller) ExportConcepts(w http.ResponseWriter, r *http.Request) {
	content, filename, err := c.concepts.ExportConcepts(r.Context())
	if err != nil {
		respondServiceError(w, r, "Controller.ExportConcepts", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (c *Controller) MinuteChart(w http.ResponseWriter, r *http.Request) {
	respondData(w, c.charts.Minute(r.Context(), mux.Vars(r)["code"]), "")
}

func (c *Controller) DailyChart(w http.ResponseWriter, r *http.Request) {
	respondData(w, c.charts.Daily(r.Context(), mux.Vars(r)["code"]), "")
}

func (c *Controller) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, msgRouteNotFound)
}

func decodeConceptRequest(w http.ResponseWriter, r *http.Request) (conceptRequest, bool) {
	var req conceptRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgBadBody)
		return conceptRequest{}, false
	}
	req.Name = strings.TrimSpace(req.Name)

	return req, true
}
