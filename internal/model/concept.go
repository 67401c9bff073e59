package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConceptStock struct {
	Code   string `json:"code" validate:"required,len=6,numeric"`
	Name   string `json:"name" validate:"required"`
	Market string `json:"market" validate:"omitempty,oneof=SH SZ sh sz"`
	Reason string `json:"reason,omitempty"`
}

func (s ConceptStock) Request() StockRequest {
	return StockRequest{Code: s.Code, Market: s.Market, Name: s.Name}
}

type Concept struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty"`
	DeletedAt *time.Time     `json:"deletedAt,omitempty"`
	Stocks    []ConceptStock `json:"stocks"`
}

func (c Concept) StockRequests() []StockRequest {
	res := make([]StockRequest, 0, len(c.Stocks))
	for _, s := range c.Stocks {
		res = append(res, s.Request())
	}
	return res
}

type ConceptQuotes struct {
	Concept          string          `json:"concept"`
	ConceptID        string          `json:"conceptId"`
	Quotes           []Quote         `json:"quotes"`
	AvgChangePercent decimal.Decimal `json:"avgChangePercent"`
	UpdateTime       time.Time       `json:"updateTime"`
}

type ConceptEventType string

const (
	ConceptCreated  ConceptEventType = "concept.created"
	ConceptUpdated  ConceptEventType = "concept.updated"
	ConceptDeleted  ConceptEventType = "concept.deleted"
	ConceptRestored ConceptEventType = "concept.restored"
	ConceptPurged   ConceptEventType = "concept.purged"
)

type ConceptEvent struct {
	Type      ConceptEventType `json:"type"`
	ConceptID string           `json:"conceptId"`
	Name      string           `json:"name,omitempty"`
	At        time.Time        `json:"at"`
}
