package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/isbleu/concept/data/repository"
	"github.com/isbleu/concept/internal/converter/dbConverter"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/internal/model/dbModel"
	"github.com/isbleu/concept/utils"
	"github.com/jackc/pgx/v5/pgconn"
)

const conceptColumns = `id, name, stocks, created_at, updated_at, deleted_at`

func (r *Postgres) ListConcepts(ctx context.Context) (res []model.Concept, err error) {
	return r.selectConcepts(ctx, "Postgres.ListConcepts",
		`SELECT `+conceptColumns+` FROM concepts WHERE deleted_at IS NULL ORDER BY created_at`)
}

func (r *Postgres) ListDeletedConcepts(ctx context.Context) ([]model.Concept, error) {
	return r.selectConcepts(ctx, "Postgres.ListDeletedConcepts",
		`SELECT `+conceptColumns+` FROM concepts WHERE deleted_at IS NOT NULL ORDER BY deleted_at`)
}

func (r *Postgres) GetConcept(ctx context.Context, id string) (model.Concept, error) {
	return r.getConcept(ctx, "Postgres.GetConcept",
		`SELECT `+conceptColumns+` FROM concepts WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *Postgres) InsertConcept(ctx context.Context, concept model.Concept) (err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Postgres.InsertConcept"
	query := `INSERT INTO concepts (` + conceptColumns + `)
		VALUES (:id, :name, :stocks, :created_at, :updated_at, :deleted_at)`

	slog.Debug("InsertConcept start", slog.String("rqID", rqID), slog.String("op", op), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("InsertConcept failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		} else {
			slog.Debug("InsertConcept completed", slog.String("rqID", rqID), slog.String("op", op))
		}
	}()

	row, err := dbConverter.ConvertToDBConcept(concept)
	if err != nil {
		return err
	}

	_, err = r.txOrDb(ctx).NamedExecContext(ctx, query, row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return repository.ErrAlreadyExists
		}
		return err
	}

	return nil
}

// UpdateConcept locks the row, then replaces its stocks and, when given, its name.
func (r *Postgres) UpdateConcept(ctx context.Context, id, name string, stocks []model.ConceptStock, at time.Time) (res model.Concept, err error) {
	encoded, err := dbConverter.EncodeStocks(stocks)
	if err != nil {
		return model.Concept{}, err
	}

	err = r.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := r.getConcept(ctx, "Postgres.UpdateConcept",
			`SELECT `+conceptColumns+` FROM concepts WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, id)
		if err != nil {
			return err
		}
		if name == "" {
			name = current.Name
		}

		res, err = r.getConcept(ctx, "Postgres.UpdateConcept",
			`UPDATE concepts SET name = $2, stocks = $3, updated_at = $4 WHERE id = $1 RETURNING `+conceptColumns,
			id, name, string(encoded), at)
		return err
	})

	return res, err
}

func (r *Postgres) SoftDeleteConcept(ctx context.Context, id string, at time.Time) (model.Concept, error) {
	return r.getConcept(ctx, "Postgres.SoftDeleteConcept",
		`UPDATE concepts SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL RETURNING `+conceptColumns, id, at)
}

func (r *Postgres) RestoreConcept(ctx context.Context, id string) (model.Concept, error) {
	return r.getConcept(ctx, "Postgres.RestoreConcept",
		`UPDATE concepts SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL RETURNING `+conceptColumns, id)
}

func (r *Postgres) PurgeConcept(ctx context.Context, id string) (err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Postgres.PurgeConcept"

	slog.Debug("PurgeConcept start", slog.String("rqID", rqID), slog.String("op", op), slog.String("id", id))
	defer func() {
		if err != nil {
			slog.Error("PurgeConcept failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	_, err = r.txOrDb(ctx).ExecContext(ctx, `DELETE FROM concepts WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	return err
}

func (r *Postgres) getConcept(ctx context.Context, op, query string, args ...any) (res model.Concept, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	slog.Debug("query start", slog.String("rqID", rqID), slog.String("op", op), slog.String("query", query))
	defer func() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			slog.Error("query failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	var row dbModel.Concept
	err = r.txOrDb(ctx).GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Concept{}, repository.ErrNotFound
		}
		return model.Concept{}, err
	}

	return dbConverter.ConvertConcept(row)
}

func (r *Postgres) selectConcepts(ctx context.Context, op, query string) (res []model.Concept, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	slog.Debug("query start", slog.String("rqID", rqID), slog.String("op", op), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("query failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		} else {
			slog.Debug("query completed", slog.String("rqID", rqID), slog.String("op", op), slog.Int("rows", len(res)))
		}
	}()

	var rows []dbModel.Concept
	if err = r.txOrDb(ctx).SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	return dbConverter.ConvertConcepts(rows)
}
