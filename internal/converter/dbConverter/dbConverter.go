package dbConverter

import (
	"encoding/json"
	"fmt"

	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/internal/model/dbModel"
)

func ConvertConcept(dbConcept dbModel.Concept) (model.Concept, error) {
	stocks := []model.ConceptStock{}
	if len(dbConcept.Stocks) > 0 {
		if err := dbConcept.Stocks.Unmarshal(&stocks); err != nil {
			return model.Concept{}, fmt.Errorf("decode stocks of %s: %w", dbConcept.ID, err)
		}
	}

	return model.Concept{
		ID:        dbConcept.ID,
		Name:      dbConcept.Name,
		CreatedAt: dbConcept.CreatedAt,
		UpdatedAt: dbConcept.UpdatedAt,
		DeletedAt: dbConcept.DeletedAt,
		Stocks:    stocks,
	}, nil
}

func ConvertConcepts(dbConcepts []dbModel.Concept) ([]model.Concept, error) {
	res := make([]model.Concept, 0, len(dbConcepts))
	for _, c := range dbConcepts {
		converted, err := ConvertConcept(c)
		if err != nil {
			return nil, err
		}
		res = append(res, converted)
	}
	return res, nil
}

func ConvertToDBConcept(concept model.Concept) (dbModel.Concept, error) {
	stocks, err := EncodeStocks(concept.Stocks)
	if err != nil {
		return dbModel.Concept{}, err
	}

	return dbModel.Concept{
		ID:        concept.ID,
		Name:      concept.Name,
		Stocks:    stocks,
		CreatedAt: concept.CreatedAt,
		UpdatedAt: concept.UpdatedAt,
		DeletedAt: concept.DeletedAt,
	}, nil
}

func EncodeStocks(stocks []model.ConceptStock) ([]byte, error) {
	if stocks == nil {
		stocks = []model.ConceptStock{}
	}
	b, err := json.Marshal(stocks)
	if err != nil {
		return nil, fmt.Errorf("encode stocks: %w", err)
	}
	return b, nil
}
