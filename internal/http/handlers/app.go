package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"promptserver/internal/cache"
	"promptserver/internal/domain"
	"promptserver/internal/infra"
	"promptserver/internal/promptgen"
	"promptserver/internal/providers/textgen"
	"promptserver/internal/providers/videometa"
	"promptserver/internal/providers/vision"
	"promptserver/internal/sqlinline"
	"promptserver/internal/storage"
)

// App bundles the collaborators every handler needs. SQL, Cache, Vision and
// Store may be nil; handlers degrade to the deterministic local path when a
// collaborator is absent.
type App struct {
	Config *infra.Config
	Logger infra.Logger
	SQL    infra.SQLExecutor
	Cache  *cache.RecordCache
	Parser textgen.Parser
	Vision vision.Analyzer
	Videos videometa.Fetcher
	Images *promptgen.ImageRenderer
	Store  *storage.FileStore
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorBody{Error: code, Message: message})
}

// saveRecord persists a finished generation. Failures are logged, never
// surfaced: the rendered prompts in the response stay valid without a stored
// copy.
func (a *App) saveRecord(ctx context.Context, record *domain.GenerationRecord) {
	if record == nil {
		return
	}
	if err := a.Cache.Set(ctx, record); err != nil {
		a.Logger.Warn().Err(err).Str("record_id", record.ID).Msg("cache record failed")
	}
	if a.SQL == nil {
		return
	}
	params, err := json.Marshal(record.Params)
	if err != nil {
		a.Logger.Error().Err(err).Str("record_id", record.ID).Msg("marshal record params failed")
		return
	}
	outputs, err := json.Marshal(record.Outputs)
	if err != nil {
		a.Logger.Error().Err(err).Str("record_id", record.ID).Msg("marshal record outputs failed")
		return
	}
	_, err = a.SQL.Exec(ctx, sqlinline.QInsertGenerationRecord,
		record.ID, string(record.Mode), record.SourceText, record.SourceURL, params, outputs, record.CreatedAt)
	if err != nil {
		a.Logger.Error().Err(err).Str("record_id", record.ID).Msg("insert record failed")
	}
}

// listRecords reads recent generations straight from the database; the cache
// only indexes by id so it cannot answer a history query.
func (a *App) listRecords(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	records := make([]domain.GenerationRecord, 0, limit)
	if a.SQL == nil {
		return records, nil
	}
	rows, err := a.SQL.Query(ctx, sqlinline.QListRecentGenerationRecords, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			record        domain.GenerationRecord
			mode          string
			paramsPayload []byte
			outputPayload []byte
		)
		if err := rows.Scan(&record.ID, &mode, &record.SourceText, &record.SourceURL, &paramsPayload, &outputPayload, &record.CreatedAt); err != nil {
			return nil, err
		}
		record.Mode = domain.GenerationMode(mode)
		if err := json.Unmarshal(paramsPayload, &record.Params); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(outputPayload, &record.Outputs); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// loadRecord serves the cache first and falls back to the database.
func (a *App) loadRecord(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	if record, err := a.Cache.Get(ctx, id); err == nil {
		return record, nil
	}
	if a.SQL == nil {
		return nil, domain.ErrNotFound
	}
	row := a.SQL.QueryRow(ctx, sqlinline.QSelectGenerationRecord, id)
	var (
		record        domain.GenerationRecord
		mode          string
		paramsPayload []byte
		outputPayload []byte
	)
	if err := row.Scan(&record.ID, &mode, &record.SourceText, &record.SourceURL, &paramsPayload, &outputPayload, &record.CreatedAt); err != nil {
		return nil, domain.ErrNotFound
	}
	record.Mode = domain.GenerationMode(mode)
	if err := json.Unmarshal(paramsPayload, &record.Params); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(outputPayload, &record.Outputs); err != nil {
		return nil, err
	}
	if err := a.Cache.Set(ctx, &record); err != nil {
		a.Logger.Warn().Err(err).Str("record_id", record.ID).Msg("cache backfill failed")
	}
	return &record, nil
}
