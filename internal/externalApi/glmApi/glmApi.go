// Package glmApi resolves the constituent stocks of a market concept through a
// web-search enabled chat completion.
package glmApi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/internal/externalApi"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/utils"
	"github.com/tidwall/gjson"
)

const systemPrompt = "你是一位严谨的中国A股研究员。你的工作方法是：通过联网搜索券商研报、公司公告、权威媒体报道来挖掘概念股。" +
	"你只输出在搜索结果中明确看到股票代码的公司，如果搜索结果中没有明确代码，你绝不猜测或编造。" +
	"你深知错误的股票代码会给投资者带来严重损失，因此你对代码准确性要求极高。"

const userPromptTemplate = `
请搜索并返回【%s】概念股的中国A股核心上市公司。

要求：
1. 只返回中国A股市场（上海、深圳证券交易所）的股票
2. 股票代码必须是6位数字
3. 返回四个字段：code（代码）、name（中文名称）、market（SH/SZ）、reason（选中理由，简要说明该公司与概念的关联性，不超过50字）
4. 返回10只左右该概念相关的近期热门强势股票

返回JSON格式：
{
  "stocks": [
    {"code": "300136", "name": "信维通信", "market": "SZ", "reason": "是星链卫星互联网地面终端设备中核心连接器的独家供应商"}
  ]
}`

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type typed struct {
	Type string `json:"type"`
}

type webSearch struct {
	SearchEngine string `json:"search_engine"`
	Enable       bool   `json:"enable"`
	SearchResult bool   `json:"search_result"`
}

type tool struct {
	Type      string    `json:"type"`
	WebSearch webSearch `json:"web_search"`
}

type completionRequest struct {
	Model          string    `json:"model"`
	Messages       []message `json:"messages"`
	Thinking       typed     `json:"thinking"`
	Tools          []tool    `json:"tools"`
	Temperature    float64   `json:"temperature"`
	TopP           float64   `json:"top_p"`
	ResponseFormat typed     `json:"response_format"`
}

type GlmApi struct {
	client *resty.Client
	cfg    *config.Config
}

func New(cfg *config.Config) *GlmApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.GLM.Timeout).
		SetAuthToken(cfg.GLM.ApiKey).
		SetHeader("Content-Type", "application/json")
	return &GlmApi{client: client, cfg: cfg}
}

// ResolveConceptStocks asks the model for the stocks behind conceptName and returns only
// the entries that look like real A-share listings. An empty result is not an error.
func (a *GlmApi) ResolveConceptStocks(ctx context.Context, conceptName string) (stocks []model.ConceptStock, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "GlmApi.ResolveConceptStocks"

	if a.cfg.GLM.ApiKey == "" {
		return nil, fmt.Errorf("%w: GLM_API_KEY is empty", externalApi.ErrNotConfigured)
	}

	slog.Info("ResolveConceptStocks start", slog.String("rqID", rqID), slog.String("op", op), slog.String("concept", conceptName))
	defer func() {
		if err != nil {
			slog.Error("ResolveConceptStocks failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return
		}
		slog.Info("ResolveConceptStocks finished", slog.String("rqID", rqID), slog.String("op", op), slog.Int("stocks", len(stocks)))
	}()

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(a.buildRequest(conceptName)).
		Post(a.cfg.GLM.Url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", externalApi.ErrUpstreamUnavailable, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d", externalApi.ErrUpstreamStatus, resp.StatusCode())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if content.Type != gjson.String {
		return nil, fmt.Errorf("%w: no message content", externalApi.ErrUpstreamFormat)
	}

	return ExtractStocks(content.String()), nil
}

func (a *GlmApi) buildRequest(conceptName string) completionRequest {
	return completionRequest{
		Model: a.cfg.GLM.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, conceptName)},
		},
		Thinking: typed{Type: "disabled"},
		Tools: []tool{{
			Type: "web_search",
			WebSearch: webSearch{
				SearchEngine: "search_std",
				Enable:       true,
				SearchResult: true,
			},
		}},
		Temperature:    0.1,
		TopP:           0.8,
		ResponseFormat: typed{Type: "json_object"},
	}
}
