package xslsxGenerator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/utils"
	"github.com/xuri/excelize/v2"
)

const (
	maxSheetNameRunes = 31
	firstDataRow      = 3
)

var ErrEmptyReport = errors.New("error nothing to export")

var columns = []string{"代码", "名称", "现价", "涨跌额", "涨跌幅(%)", "今开", "最高", "最低", "昨收", "成交量", "成交额", "更新时间", "状态"}

var directionColors = map[string]string{
	"up":   "#d9363e",
	"down": "#1a9c4a",
	"flat": "#595959",
}

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

type XSLSXGenerator struct{}

func New() *XSLSXGenerator {
	return &XSLSXGenerator{}
}

// Generate renders one sheet per concept and returns the workbook bytes with its extension.
func (g *XSLSXGenerator) Generate(ctx context.Context, concepts []model.ConceptQuotes) (fileBytes []byte, fileExtension string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "XSLSXGenerator.Generate"

	if len(concepts) == 0 {
		return nil, "", ErrEmptyReport
	}

	slog.Debug("Generate start", slog.String("rqID", rqID), slog.String("op", op), slog.Int("concepts", len(concepts)))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	styles, err := newStyles(f)
	if err != nil {
		return nil, "", err
	}

	for i, concept := range concepts {
		if err = g.fillSheet(f, styles, concept, i+1); err != nil {
			slog.Error("got error while filling sheet", slog.String("rqID", rqID), slog.String("op", op), slog.String("concept", concept.ConceptID), slog.String("err", err.Error()))
			return nil, "", err
		}
	}

	if err = f.DeleteSheet("Sheet1"); err != nil {
		slog.Error("got error while deleting Sheet1", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		slog.Error("got error while Saving file to bytes buffer", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	slog.Debug("Generate completed", slog.String("rqID", rqID), slog.String("op", op))

	return buf.Bytes(), ".xlsx", nil
}

type styles struct {
	title     int
	header    int
	direction map[string]int
}

func newStyles(f *excelize.File) (styles, error) {
	title, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#cfe2f3"}},
	})
	if err != nil {
		return styles{}, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#eeeeee"}},
	})
	if err != nil {
		return styles{}, err
	}

	s := styles{title: title, header: header, direction: make(map[string]int, len(directionColors))}
	for direction, color := range directionColors {
		id, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: color}})
		if err != nil {
			return styles{}, err
		}
		s.direction[direction] = id
	}

	return s, nil
}

func (g *XSLSXGenerator) fillSheet(f *excelize.File, st styles, concept model.ConceptQuotes, ordinal int) error {
	sheetName := SheetName(ordinal, concept.Concept)
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("new sheet %q: %w", sheetName, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}

	if err = f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return err
	}
	title := fmt.Sprintf("%s  平均涨跌幅 %s%%  %s", concept.Concept, concept.AvgChangePercent.StringFixed(2), concept.UpdateTime.Format("2006-01-02 15:04:05"))
	_ = f.SetCellStr(sheetName, "A1", title)
	if err = f.SetCellStyle(sheetName, "A1", "A1", st.title); err != nil {
		return fmt.Errorf("apply title style: %w", err)
	}

	if err = f.SetSheetRow(sheetName, "A2", &columns); err != nil {
		return err
	}
	if err = f.SetCellStyle(sheetName, "A2", lastCol+"2", st.header); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, q := range concept.Quotes {
		row := i + firstDataRow
		values := []any{
			q.Code,
			q.Name,
			q.Price.InexactFloat64(),
			q.Change.InexactFloat64(),
			q.ChangePercent.InexactFloat64(),
			q.Open.InexactFloat64(),
			q.High.InexactFloat64(),
			q.Low.InexactFloat64(),
			q.PreClose.InexactFloat64(),
			q.Volume,
			q.Amount.InexactFloat64(),
			q.UpdateTime,
			string(q.Status),
		}
		if err = f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		_ = f.SetCellStyle(sheetName, fmt.Sprintf("C%d", row), fmt.Sprintf("E%d", row), st.direction[q.Direction()])
	}

	return f.SetColWidth(sheetName, "A", lastCol, 12)
}

// SheetName builds a unique, excel-safe sheet name such as "1. 机器人".
func SheetName(ordinal int, conceptName string) string {
	name := fmt.Sprintf("%d. %s", ordinal, sheetNameReplacer.Replace(conceptName))
	runes := []rune(name)
	if len(runes) > maxSheetNameRunes {
		name = string(runes[:maxSheetNameRunes])
	}
	return name
}
