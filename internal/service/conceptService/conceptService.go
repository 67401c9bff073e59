package conceptService

//go:generate mockgen -source=conceptService.go -destination=mocks_test.go -package=conceptService

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/isbleu/concept/data/repository"
	"github.com/isbleu/concept/internal/externalApi"
	"github.com/isbleu/concept/internal/market"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/internal/service"
	"github.com/isbleu/concept/utils"
	"github.com/shopspring/decimal"
)

const (
	msgEmptyName       = "概念名称不能为空"
	msgInvalidStocks   = "成分股数据无效"
	msgInvalidCode     = "股票代码必须是6位数字"
	msgInvalidMarket   = "市场必须是SH或SZ"
	msgNothingToExport = "暂无概念可导出"

	idInsertAttempts = 3
)

type Repository interface {
	ListConcepts(ctx context.Context) ([]model.Concept, error)
	GetConcept(ctx context.Context, id string) (model.Concept, error)
	InsertConcept(ctx context.Context, concept model.Concept) error
	UpdateConcept(ctx context.Context, id, name string, stocks []model.ConceptStock, at time.Time) (model.Concept, error)
	SoftDeleteConcept(ctx context.Context, id string, at time.Time) (model.Concept, error)
	ListDeletedConcepts(ctx context.Context) ([]model.Concept, error)
	RestoreConcept(ctx context.Context, id string) (model.Concept, error)
	PurgeConcept(ctx context.Context, id string) error
}

type QuoteFetcher interface {
	GetBatchQuotes(ctx context.Context, requests []model.StockRequest) []model.Quote
	GetStockQuote(ctx context.Context, code, mkt string) model.Quote
}

type Resolver interface {
	ResolveConceptStocks(ctx context.Context, conceptName string) ([]model.ConceptStock, error)
}

type QuoteCache interface {
	GetQuotes(ctx context.Context, conceptID string) ([]model.Quote, error)
	SetQuotes(ctx context.Context, quotes map[string][]model.Quote) error
}

type Publisher interface {
	Publish(ctx context.Context, event model.ConceptEvent) error
}

type ReportGenerator interface {
	Generate(ctx context.Context, concepts []model.ConceptQuotes) (fileBytes []byte, fileExtension string, err error)
}

type CloudStorage interface {
	UploadFile(ctx context.Context, reader io.Reader, filename string) (downloadLink string, err error)
	DeleteOldFiles(ctx context.Context) error
}

type ConceptService struct {
	repo      Repository
	quotes    QuoteFetcher
	resolver  Resolver
	cache     QuoteCache
	publisher Publisher
	reports   ReportGenerator
	storage   CloudStorage
	validate  *validator.Validate
	now       func() time.Time
}

// New builds the service. storage may be nil when no cloud upload is configured.
func New(
	repo Repository,
	quotes QuoteFetcher,
	resolver Resolver,
	cache QuoteCache,
	publisher Publisher,
	reports ReportGenerator,
	storage CloudStorage,
) *ConceptService {
	return &ConceptService{
		repo:      repo,
		quotes:    quotes,
		resolver:  resolver,
		cache:     cache,
		publisher: publisher,
		reports:   reports,
		storage:   storage,
		validate:  validator.New(),
		now:       time.Now,
	}
}

func (s *ConceptService) ListConcepts(ctx context.Context) ([]model.Concept, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.ListConcepts"

	concepts, err := s.repo.ListConcepts(ctx)
	if err != nil {
		slog.Error("got error from repo.ListConcepts", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}
	return concepts, nil
}

func (s *ConceptService) GetConcept(ctx context.Context, id string) (model.Concept, error) {
	concept, err := s.repo.GetConcept(ctx, id)
	if err != nil {
		return model.Concept{}, s.mapRepoErr(ctx, "ConceptService.GetConcept", err)
	}
	return concept, nil
}

// CreateConcept stores a new concept. Without explicit stocks the constituents are resolved by name.
func (s *ConceptService) CreateConcept(ctx context.Context, name string, stocks []model.ConceptStock) (concept model.Concept, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.CreateConcept"

	slog.Debug("CreateConcept start", slog.String("rqID", rqID), slog.String("op", op), slog.String("name", name))
	defer func() {
		slog.Debug("CreateConcept finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("id", concept.ID))
	}()

	name, stocks, err = s.prepare(ctx, name, stocks)
	if err != nil {
		return model.Concept{}, err
	}

	concept = model.Concept{
		Name:   name,
		Stocks: stocks,
	}

	// ids are millisecond timestamps, so two creates in the same millisecond collide
	created := s.now()
	for attempt := 0; attempt < idInsertAttempts; attempt++ {
		at := created.Add(time.Duration(attempt) * time.Millisecond)
		concept.ID = fmt.Sprintf("concept_%d", at.UnixMilli())
		concept.CreatedAt = at

		err = s.repo.InsertConcept(ctx, concept)
		if !errors.Is(err, repository.ErrAlreadyExists) {
			break
		}
		slog.Warn("concept id collision", slog.String("rqID", rqID), slog.String("op", op), slog.String("id", concept.ID))
	}
	if err != nil {
		slog.Error("got error from repo.InsertConcept", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Concept{}, err
	}

	s.publish(ctx, model.ConceptCreated, concept)

	return concept, nil
}

// UpdateConcept renames the concept and replaces its stocks, resolving them again when none are given.
func (s *ConceptService) UpdateConcept(ctx context.Context, id, name string, stocks []model.ConceptStock) (model.Concept, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.UpdateConcept"

	slog.Debug("UpdateConcept start", slog.String("rqID", rqID), slog.String("op", op), slog.String("id", id))
	defer func() {
		slog.Debug("UpdateConcept finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("id", id))
	}()

	if strings.TrimSpace(name) == "" {
		return model.Concept{}, service.NewInputError(msgEmptyName)
	}

	// fail fast before paying for a resolver call
	if _, err := s.repo.GetConcept(ctx, id); err != nil {
		return model.Concept{}, s.mapRepoErr(ctx, op, err)
	}

	name, stocks, err := s.prepare(ctx, name, stocks)
	if err != nil {
		return model.Concept{}, err
	}

	concept, err := s.repo.UpdateConcept(ctx, id, name, stocks, s.now())
	if err != nil {
		return model.Concept{}, s.mapRepoErr(ctx, op, err)
	}

	s.publish(ctx, model.ConceptUpdated, concept)

	return concept, nil
}

func (s *ConceptService) DeleteConcept(ctx context.Context, id string) error {
	concept, err := s.repo.SoftDeleteConcept(ctx, id, s.now())
	if err != nil {
		return s.mapRepoErr(ctx, "ConceptService.DeleteConcept", err)
	}

	s.publish(ctx, model.ConceptDeleted, concept)

	return nil
}

func (s *ConceptService) ListTrash(ctx context.Context) ([]model.Concept, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.ListTrash"

	concepts, err := s.repo.ListDeletedConcepts(ctx)
	if err != nil {
		slog.Error("got error from repo.ListDeletedConcepts", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}
	return concepts, nil
}

func (s *ConceptService) RestoreConcept(ctx context.Context, id string) (model.Concept, error) {
	concept, err := s.repo.RestoreConcept(ctx, id)
	if err != nil {
		return model.Concept{}, s.mapRepoErr(ctx, "ConceptService.RestoreConcept", err)
	}

	s.publish(ctx, model.ConceptRestored, concept)

	return concept, nil
}

// PurgeConcept removes a concept from the trash for good. Unknown ids are not an error.
func (s *ConceptService) PurgeConcept(ctx context.Context, id string) error {
	if err := s.repo.PurgeConcept(ctx, id); err != nil {
		return s.mapRepoErr(ctx, "ConceptService.PurgeConcept", err)
	}

	s.publish(ctx, model.ConceptPurged, model.Concept{ID: id})

	return nil
}

// GetConceptQuotes quotes every stock of the concept. The average change only counts priced quotes.
func (s *ConceptService) GetConceptQuotes(ctx context.Context, id string) (model.ConceptQuotes, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.GetConceptQuotes"

	slog.Debug("GetConceptQuotes start", slog.String("rqID", rqID), slog.String("op", op), slog.String("id", id))
	defer func() {
		slog.Debug("GetConceptQuotes finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("id", id))
	}()

	concept, err := s.repo.GetConcept(ctx, id)
	if err != nil {
		return model.ConceptQuotes{}, s.mapRepoErr(ctx, op, err)
	}

	return s.conceptQuotes(ctx, concept), nil
}

// GetStockQuote quotes a single instrument. mkt is optional.
func (s *ConceptService) GetStockQuote(ctx context.Context, code, mkt string) (model.Quote, error) {
	code = market.Bare(strings.TrimSpace(code))
	if err := s.validate.Var(code, "len=6,numeric"); err != nil {
		return model.Quote{}, service.NewInputError(msgInvalidCode)
	}
	if mkt != "" {
		if err := s.validate.Var(mkt, "oneof=SH SZ sh sz"); err != nil {
			return model.Quote{}, service.NewInputError(msgInvalidMarket)
		}
	}

	return s.quotes.GetStockQuote(ctx, code, mkt), nil
}

// ExportConcepts renders every concept with fresh quotes into a workbook.
func (s *ConceptService) ExportConcepts(ctx context.Context) (content []byte, filename string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.ExportConcepts"

	slog.Debug("ExportConcepts start", slog.String("rqID", rqID), slog.String("op", op))
	defer func() {
		slog.Debug("ExportConcepts finished", slog.String("rqID", rqID), slog.String("op", op))
	}()

	concepts, err := s.repo.ListConcepts(ctx)
	if err != nil {
		slog.Error("got error from repo.ListConcepts", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}
	if len(concepts) == 0 {
		return nil, "", service.NewInputError(msgNothingToExport)
	}

	rows := make([]model.ConceptQuotes, 0, len(concepts))
	for _, c := range concepts {
		rows = append(rows, s.conceptQuotes(ctx, c))
	}

	content, ext, err := s.reports.Generate(ctx, rows)
	if err != nil {
		slog.Error("got error from reports.Generate", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	return content, "concepts_" + s.now().Format("20060102_150405") + ext, nil
}

// FillQuoteCache refreshes the cached quotes of every concept in one pass.
func (s *ConceptService) FillQuoteCache(ctx context.Context) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.FillQuoteCache"

	concepts, err := s.repo.ListConcepts(ctx)
	if err != nil {
		slog.Error("got error from repo.ListConcepts", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	fresh := make(map[string][]model.Quote, len(concepts))
	for _, c := range concepts {
		if len(c.Stocks) == 0 {
			continue
		}
		fresh[c.ID] = s.quotes.GetBatchQuotes(ctx, c.StockRequests())
	}
	if len(fresh) == 0 {
		return nil
	}

	if err = s.cache.SetQuotes(ctx, fresh); err != nil {
		slog.Error("got error from cache.SetQuotes", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	slog.Info("quote cache filled", slog.String("rqID", rqID), slog.String("op", op), slog.Int("concepts", len(fresh)))

	return nil
}

// UploadExport publishes the export to cloud storage and then drops expired uploads.
func (s *ConceptService) UploadExport(ctx context.Context) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.UploadExport"

	if s.storage == nil {
		return fmt.Errorf("%w: cloud storage", externalApi.ErrNotConfigured)
	}

	content, filename, err := s.ExportConcepts(ctx)
	if err != nil {
		return err
	}

	link, err := s.storage.UploadFile(ctx, bytes.NewReader(content), filename)
	if err != nil {
		slog.Error("got error from storage.UploadFile", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}
	slog.Info("export uploaded", slog.String("rqID", rqID), slog.String("op", op), slog.String("link", link))

	if err = s.storage.DeleteOldFiles(ctx); err != nil {
		slog.Warn("got error from storage.DeleteOldFiles", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return nil
}

func (s *ConceptService) conceptQuotes(ctx context.Context, concept model.Concept) model.ConceptQuotes {
	res := model.ConceptQuotes{
		Concept:    concept.Name,
		ConceptID:  concept.ID,
		Quotes:     []model.Quote{},
		UpdateTime: s.now(),
	}
	if len(concept.Stocks) == 0 {
		return res
	}

	res.Quotes = s.cachedQuotes(ctx, concept)
	res.AvgChangePercent = AverageChangePercent(res.Quotes)

	return res
}

func (s *ConceptService) cachedQuotes(ctx context.Context, concept model.Concept) []model.Quote {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.cachedQuotes"

	cached, err := s.cache.GetQuotes(ctx, concept.ID)
	if err == nil && sameStocks(cached, concept.Stocks) {
		return cached
	}

	quotes := s.quotes.GetBatchQuotes(ctx, concept.StockRequests())

	if err = s.cache.SetQuotes(ctx, map[string][]model.Quote{concept.ID: quotes}); err != nil {
		slog.Warn("can't cache quotes", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return quotes
}

func sameStocks(quotes []model.Quote, stocks []model.ConceptStock) bool {
	return slices.EqualFunc(quotes, stocks, func(q model.Quote, s model.ConceptStock) bool {
		return q.Code == s.Code
	})
}

// AverageChangePercent is the mean change percent of quotes with a positive price, rounded to 2 places.
func AverageChangePercent(quotes []model.Quote) decimal.Decimal {
	total := decimal.Zero
	count := int64(0)
	for _, q := range quotes {
		if !q.Price.IsPositive() {
			continue
		}
		total = total.Add(q.ChangePercent)
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count)).Round(2)
}

// prepare validates the input and resolves stocks when none are given.
func (s *ConceptService) prepare(ctx context.Context, name string, stocks []model.ConceptStock) (string, []model.ConceptStock, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, service.NewInputError(msgEmptyName)
	}

	if len(stocks) > 0 {
		normalized, err := s.normalizeStocks(stocks)
		return name, normalized, err
	}

	resolved, err := s.resolve(ctx, name)
	return name, resolved, err
}

func (s *ConceptService) normalizeStocks(stocks []model.ConceptStock) ([]model.ConceptStock, error) {
	res := make([]model.ConceptStock, 0, len(stocks))
	for i, st := range stocks {
		st.Code = strings.TrimSpace(st.Code)
		st.Name = strings.TrimSpace(st.Name)
		if err := s.validate.Struct(st); err != nil {
			var vErrs validator.ValidationErrors
			if errors.As(err, &vErrs) && len(vErrs) > 0 {
				return nil, service.NewInputError(fmt.Sprintf("%s: stocks[%d].%s", msgInvalidStocks, i, strings.ToLower(vErrs[0].Field())))
			}
			return nil, service.NewInputError(msgInvalidStocks)
		}
		st.Market = strings.ToUpper(market.Prefix(st.Code, st.Market))
		res = append(res, st)
	}
	return res, nil
}

func (s *ConceptService) resolve(ctx context.Context, name string) ([]model.ConceptStock, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ConceptService.resolve"

	stocks, err := s.resolver.ResolveConceptStocks(ctx, name)
	if err != nil {
		if errors.Is(err, externalApi.ErrNotConfigured) {
			return nil, service.ErrResolverDisabled
		}
		slog.Error("got error from resolver.ResolveConceptStocks", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}
	if len(stocks) == 0 {
		slog.Warn("resolver returned no stocks", slog.String("rqID", rqID), slog.String("op", op), slog.String("name", name))
		return nil, service.ErrNoStocksResolved
	}

	return stocks, nil
}

func (s *ConceptService) publish(ctx context.Context, eventType model.ConceptEventType, concept model.Concept) {
	event := model.ConceptEvent{
		Type:      eventType,
		ConceptID: concept.ID,
		Name:      concept.Name,
		At:        s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Warn("can't publish concept event",
			slog.String("rqID", utils.GetRequestIDFromCtx(ctx)),
			slog.String("type", string(eventType)),
			slog.String("conceptID", concept.ID),
			slog.String("err", err.Error()),
		)
	}
}

func (s *ConceptService) mapRepoErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return service.ErrNotFound
	}
	slog.Error("got error from repo", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
	return err
}
