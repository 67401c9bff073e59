package telebotConverter

import (
	"fmt"
	"strings"

	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/internal/model/tg/tgCallback"
	tele "gopkg.in/telebot.v4"
)

const timeLayout = "2006-01-02 15:04:05"

// A-share convention: red is up, green is down.
func directionMark(direction string) string {
	switch direction {
	case "up":
		return "🔴"
	case "down":
		return "🟢"
	default:
		return "⚪"
	}
}

func signed(percent string) string {
	if !strings.HasPrefix(percent, "-") {
		return "+" + percent
	}
	return percent
}

func averageDirection(cq model.ConceptQuotes) string {
	switch cq.AvgChangePercent.Sign() {
	case 1:
		return "up"
	case -1:
		return "down"
	default:
		return "flat"
	}
}

func ConceptsResponse(items []model.ConceptQuotes) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}

	if len(items) == 0 {
		return "暂无概念，请先在网页端创建", markup
	}

	var sb strings.Builder
	sb.WriteString("📊 概念板块\n\n")

	rows := make([]tele.Row, 0, len(items))
	for i, cq := range items {
		sb.WriteString(fmt.Sprintf("%d. %s %s  %s%%  (%d 只)\n",
			i+1,
			directionMark(averageDirection(cq)),
			cq.Concept,
			signed(cq.AvgChangePercent.StringFixed(2)),
			len(cq.Quotes),
		))
		rows = append(rows, markup.Row(markup.Data(cq.Concept, tgCallback.ConceptQuotes, cq.ConceptID)))
	}

	markup.Inline(rows...)

	return sb.String(), markup
}

func ConceptQuotesResponse(cq model.ConceptQuotes) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📈 %s\n", cq.Concept))
	sb.WriteString(fmt.Sprintf("平均涨跌幅: %s%%\n", signed(cq.AvgChangePercent.StringFixed(2))))
	sb.WriteString(fmt.Sprintf("更新时间: %s\n\n", cq.UpdateTime.Format(timeLayout)))

	if len(cq.Quotes) == 0 {
		sb.WriteString("暂无成分股\n")
	}

	for _, q := range cq.Quotes {
		sb.WriteString(QuoteLine(q))
		sb.WriteString("\n")
	}

	markup.Inline(markup.Row(
		markup.Data("🔄 刷新", tgCallback.RefreshQuotes, cq.ConceptID),
		markup.Data("⬅️ 返回", tgCallback.BackToConcepts),
	))

	return sb.String(), markup
}

func QuoteLine(q model.Quote) string {
	switch q.Status {
	case model.QuoteStatusError:
		return fmt.Sprintf("⚠️ %s %s  行情获取失败", q.Code, q.Name)
	case model.QuoteStatusStopped:
		return fmt.Sprintf("⏸ %s %s  %s  停牌", q.Code, q.Name, q.Price.StringFixed(2))
	}

	line := fmt.Sprintf("%s %s %s  %s  %s%%",
		directionMark(q.Direction()),
		q.Code,
		q.Name,
		q.Price.StringFixed(2),
		signed(q.ChangePercent.StringFixed(2)),
	)
	if q.Status == model.QuoteStatusClosed {
		line += "  已收盘"
	}
	return line
}

func TrashResponse(concepts []model.Concept) string {
	if len(concepts) == 0 {
		return "🗑 回收站为空"
	}

	var sb strings.Builder
	sb.WriteString("🗑 回收站\n\n")
	for _, c := range concepts {
		deleted := ""
		if c.DeletedAt != nil {
			deleted = c.DeletedAt.Format(timeLayout)
		}
		sb.WriteString(fmt.Sprintf("• %s (%s)  删除于 %s\n", c.Name, c.ID, deleted))
	}
	return sb.String()
}
