package telegram

//go:generate mockgen -source=controller.go -destination=mocks_test.go -package=telegram

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/isbleu/concept/internal/converter/telebotConverter"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/internal/service"
	"github.com/isbleu/concept/utils"
	tele "gopkg.in/telebot.v4"
)

const (
	internalErrMsg = "出错了，请稍后再试"
	notFoundMsg    = "概念不存在"
	quotesUsageMsg = "用法: /quotes <概念ID>"
	startMsg       = "股票概念题材管理\n\n/concepts 概念列表及平均涨跌幅\n/quotes <概念ID> 成分股行情\n/trash 回收站"
)

type ConceptService interface {
	ListConcepts(ctx context.Context) ([]model.Concept, error)
	ListTrash(ctx context.Context) ([]model.Concept, error)
	GetConceptQuotes(ctx context.Context, id string) (model.ConceptQuotes, error)
}

type Controller struct {
	conceptService ConceptService
}

func NewController(conceptService ConceptService) *Controller {
	return &Controller{conceptService: conceptService}
}

func (ctrl *Controller) Start(c tele.Context) error {
	return c.Send(startMsg)
}

func (ctrl *Controller) Concepts(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)
	text, markup, err := ctrl.conceptsOverview(ctx)
	if err != nil {
		return c.Send(internalErrMsg)
	}
	return c.Send(text, markup)
}

func (ctrl *Controller) Quotes(c tele.Context) error {
	id := strings.TrimSpace(c.Message().Payload)
	if id == "" {
		return c.Send(quotesUsageMsg)
	}

	ctx := utils.CreateCtxWithRqID(c)
	text, markup, err := ctrl.conceptQuotes(ctx, id)
	if err != nil {
		return c.Send(text)
	}
	return c.Send(text, markup)
}

func (ctrl *Controller) Trash(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	concepts, err := ctrl.conceptService.ListTrash(ctx)
	if err != nil {
		slog.Error("got error from conceptService.ListTrash", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return c.Send(internalErrMsg)
	}

	return c.Send(telebotConverter.TrashResponse(concepts))
}

// ConceptQuotesCallback answers both the concept button and the refresh button.
func (ctrl *Controller) ConceptQuotesCallback(c tele.Context) error {
	_ = c.Respond()

	ctx := utils.CreateCtxWithRqID(c)
	text, markup, err := ctrl.conceptQuotes(ctx, c.Callback().Data)
	if err != nil {
		return c.Send(text)
	}
	return c.Edit(text, markup)
}

func (ctrl *Controller) BackToConceptsCallback(c tele.Context) error {
	_ = c.Respond()

	ctx := utils.CreateCtxWithRqID(c)
	text, markup, err := ctrl.conceptsOverview(ctx)
	if err != nil {
		return c.Send(internalErrMsg)
	}
	return c.Edit(text, markup)
}

func (ctrl *Controller) conceptsOverview(ctx context.Context) (string, *tele.ReplyMarkup, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	concepts, err := ctrl.conceptService.ListConcepts(ctx)
	if err != nil {
		slog.Error("got error from conceptService.ListConcepts", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return "", nil, err
	}

	items := make([]model.ConceptQuotes, 0, len(concepts))
	for _, concept := range concepts {
		cq, err := ctrl.conceptService.GetConceptQuotes(ctx, concept.ID)
		if err != nil {
			// deleted in the meantime
			slog.Warn("skip concept in overview", slog.String("rqID", rqID), slog.String("id", concept.ID), slog.String("err", err.Error()))
			continue
		}
		items = append(items, cq)
	}

	text, markup := telebotConverter.ConceptsResponse(items)
	return text, markup, nil
}

// conceptQuotes returns the message to send. On error the text is the user-facing error message.
func (ctrl *Controller) conceptQuotes(ctx context.Context, id string) (string, *tele.ReplyMarkup, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	cq, err := ctrl.conceptService.GetConceptQuotes(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFoundMsg, nil, err
		}
		slog.Error("got error from conceptService.GetConceptQuotes", slog.String("rqID", rqID), slog.String("id", id), slog.String("err", err.Error()))
		return internalErrMsg, nil, err
	}

	text, markup := telebotConverter.ConceptQuotesResponse(cq)
	return text, markup, nil
}
