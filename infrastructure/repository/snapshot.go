// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/rank-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

const (
	snapshotsTable = "rank_snapshots"
)

var snapshotColumns = []string{
	"id",
	"user_id",
	"keyword",
	"filtered_domain",
	"device",
	"search_engine",
	"location",
	"position",
	"matched_domain",
	"rating",
	"reviews",
	"baseline_24h",
	"baseline_7d",
	"baseline_30d",
	"baseline_24h_at",
	"baseline_7d_at",
	"baseline_30d_at",
	"observed_at",
	"created_at",
	"updated_at",
}

type SnapshotRepository interface {
	FindCurrent(ctx context.Context, query domain.RankQuery) (*domain.RankSnapshot, error)
	UpsertResolved(ctx context.Context, query domain.RankQuery, resolution *domain.RankResolution, roll domain.BaselineRoller) (*domain.RankSnapshot, error)
	ListDistinctQueries(ctx context.Context) ([]*domain.TrackedQuery, error)
	ListByUser(ctx context.Context, userID int, domainFilter, keywordFilter string) ([]*domain.RankSnapshot, error)
	ListFilterOptions(ctx context.Context, userID int) (*domain.HistoryOptions, error)
	DeleteByID(ctx context.Context, userID int, snapshotID string) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// FindCurrent busca o snapshot vigente da identidade, ou nil se não existir
func (r *snapshotRepository) FindCurrent(ctx context.Context, query domain.RankQuery) (*domain.RankSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where(identityClause(query)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.DB.QueryRowContext(ctx, sqlQuery, args...)
	snapshot, err := scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// UpsertResolved grava a resolução como o snapshot vigente da identidade.
// A leitura do snapshot anterior, o cálculo das baselines e a escrita rodam
// na mesma transação com lock de linha, para que resoluções concorrentes da
// mesma identidade não percam atualizações de baseline.
func (r *snapshotRepository) UpsertResolved(
	ctx context.Context,
	query domain.RankQuery,
	resolution *domain.RankResolution,
	roll domain.BaselineRoller,
) (*domain.RankSnapshot, error) {
	var saved *domain.RankSnapshot

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		prev, err := findCurrentForUpdate(ctx, tx, query)
		if err != nil {
			return err
		}

		now := time.Now()
		baselines := roll(prev)

		snapshot := &domain.RankSnapshot{
			UserID:         query.UserID,
			Keyword:        query.Keyword,
			FilteredDomain: query.FilteredDomain,
			Device:         query.Device,
			SearchEngine:   query.SearchEngine,
			Location:       query.Location,
			Position:       resolution.Position,
			MatchedDomain:  resolution.MatchedDomain,
			Rating:         resolution.Rating,
			Reviews:        resolution.Reviews,
			Trends:         baselines,
			ObservedAt:     now,
			UpdatedAt:      now,
		}

		if prev != nil {
			snapshot.ID = prev.ID
			snapshot.CreatedAt = prev.CreatedAt
			saved = snapshot
			return updateSnapshot(ctx, tx, snapshot)
		}

		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}

		snapshot.ID = id
		snapshot.CreatedAt = now
		saved = snapshot
		return insertSnapshot(ctx, tx, snapshot)
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// ListDistinctQueries agrega todos os snapshots em identidades distintas de
// consulta, com o conjunto de usuários que compartilham cada identidade.
// É a entrada do lote de atualização diária.
func (r *snapshotRepository) ListDistinctQueries(ctx context.Context) ([]*domain.TrackedQuery, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"keyword",
			"filtered_domain",
			"device",
			"search_engine",
			"location",
			"array_agg(DISTINCT user_id)",
		).
		From(snapshotsTable).
		GroupBy("keyword", "filtered_domain", "device", "search_engine", "location").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	queries := make([]*domain.TrackedQuery, 0)
	for rows.Next() {
		tracked := &domain.TrackedQuery{}
		var userIDs pq.Int64Array

		err := rows.Scan(
			&tracked.Keyword,
			&tracked.FilteredDomain,
			&tracked.Device,
			&tracked.SearchEngine,
			&tracked.Location,
			&userIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear identidade de consulta: %w", err)
		}

		tracked.UserIDs = make([]int, 0, len(userIDs))
		for _, userID := range userIDs {
			tracked.UserIDs = append(tracked.UserIDs, int(userID))
		}
		queries = append(queries, tracked)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return queries, nil
}

// ListByUser retorna os snapshots vigentes do usuário, com filtros opcionais
// de domínio e palavra-chave, do mais recente para o mais antigo
func (r *snapshotRepository) ListByUser(ctx context.Context, userID int, domainFilter, keywordFilter string) ([]*domain.RankSnapshot, error) {
	queryBuilder := squirrel.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if domainFilter != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"filtered_domain": domainFilter})
	}

	if keywordFilter != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"keyword": keywordFilter})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.RankSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// ListFilterOptions lista os domínios e palavras-chave distintos do usuário
// para os filtros do painel
func (r *snapshotRepository) ListFilterOptions(ctx context.Context, userID int) (*domain.HistoryOptions, error) {
	sqlQuery, args, err := squirrel.
		Select("DISTINCT filtered_domain", "keyword").
		From(snapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("filtered_domain ASC", "keyword ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	options := &domain.HistoryOptions{
		Domains:  make([]string, 0),
		Keywords: make([]string, 0),
	}

	seenDomains := make(map[string]bool)
	seenKeywords := make(map[string]bool)

	for rows.Next() {
		var filteredDomain, keyword string
		if err := rows.Scan(&filteredDomain, &keyword); err != nil {
			return nil, fmt.Errorf("erro ao escanear opções de filtro: %w", err)
		}

		if !seenDomains[filteredDomain] {
			seenDomains[filteredDomain] = true
			options.Domains = append(options.Domains, filteredDomain)
		}

		if !seenKeywords[keyword] {
			seenKeywords[keyword] = true
			options.Keywords = append(options.Keywords, keyword)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return options, nil
}

// DeleteByID remove um snapshot do histórico do usuário
func (r *snapshotRepository) DeleteByID(ctx context.Context, userID int, snapshotID string) error {
	sqlQuery, args, err := squirrel.
		Delete(snapshotsTable).
		Where(squirrel.Eq{"id": snapshotID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func identityClause(query domain.RankQuery) squirrel.Eq {
	return squirrel.Eq{
		"user_id":         query.UserID,
		"keyword":         query.Keyword,
		"filtered_domain": query.FilteredDomain,
		"device":          query.Device,
		"location":        query.Location,
	}
}

func findCurrentForUpdate(ctx context.Context, tx *sql.Tx, query domain.RankQuery) (*domain.RankSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where(identityClause(query)).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := tx.QueryRowContext(ctx, sqlQuery, args...)
	snapshot, err := scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func insertSnapshot(ctx context.Context, tx *sql.Tx, snapshot *domain.RankSnapshot) error {
	sqlQuery, args, err := squirrel.
		Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(
			snapshot.ID,
			snapshot.UserID,
			snapshot.Keyword,
			snapshot.FilteredDomain,
			snapshot.Device,
			snapshot.SearchEngine,
			snapshot.Location,
			snapshot.Position,
			snapshot.MatchedDomain,
			snapshot.Rating,
			snapshot.Reviews,
			snapshot.Trends.Baseline24h,
			snapshot.Trends.Baseline7d,
			snapshot.Trends.Baseline30d,
			snapshot.Trends.Baseline24hAt,
			snapshot.Trends.Baseline7dAt,
			snapshot.Trends.Baseline30dAt,
			snapshot.ObservedAt,
			snapshot.CreatedAt,
			snapshot.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir snapshot: %w", err)
	}

	return nil
}

func updateSnapshot(ctx context.Context, tx *sql.Tx, snapshot *domain.RankSnapshot) error {
	sqlQuery, args, err := squirrel.
		Update(snapshotsTable).
		Set("search_engine", snapshot.SearchEngine).
		Set("position", snapshot.Position).
		Set("matched_domain", snapshot.MatchedDomain).
		Set("rating", snapshot.Rating).
		Set("reviews", snapshot.Reviews).
		Set("baseline_24h", snapshot.Trends.Baseline24h).
		Set("baseline_7d", snapshot.Trends.Baseline7d).
		Set("baseline_30d", snapshot.Trends.Baseline30d).
		Set("baseline_24h_at", snapshot.Trends.Baseline24hAt).
		Set("baseline_7d_at", snapshot.Trends.Baseline7dAt).
		Set("baseline_30d_at", snapshot.Trends.Baseline30dAt).
		Set("observed_at", snapshot.ObservedAt).
		Set("updated_at", snapshot.UpdatedAt).
		Where(squirrel.Eq{"id": snapshot.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao atualizar snapshot: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (*domain.RankSnapshot, error) {
	snapshot := &domain.RankSnapshot{}

	var (
		rating      sql.NullFloat64
		reviews     sql.NullInt64
		baseline24h sql.NullInt64
		baseline7d  sql.NullInt64
		baseline30d sql.NullInt64
		anchor24h   sql.NullTime
		anchor7d    sql.NullTime
		anchor30d   sql.NullTime
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.Keyword,
		&snapshot.FilteredDomain,
		&snapshot.Device,
		&snapshot.SearchEngine,
		&snapshot.Location,
		&snapshot.Position,
		&snapshot.MatchedDomain,
		&rating,
		&reviews,
		&baseline24h,
		&baseline7d,
		&baseline30d,
		&anchor24h,
		&anchor7d,
		&anchor30d,
		&snapshot.ObservedAt,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		snapshot.Rating = &rating.Float64
	}
	if reviews.Valid {
		value := int(reviews.Int64)
		snapshot.Reviews = &value
	}
	snapshot.Trends.Baseline24h = nullableInt(baseline24h)
	snapshot.Trends.Baseline7d = nullableInt(baseline7d)
	snapshot.Trends.Baseline30d = nullableInt(baseline30d)
	snapshot.Trends.Baseline24hAt = nullableTime(anchor24h)
	snapshot.Trends.Baseline7dAt = nullableTime(anchor7d)
	snapshot.Trends.Baseline30dAt = nullableTime(anchor30d)

	return snapshot, nil
}

func nullableInt(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	converted := int(value.Int64)
	return &converted
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}
