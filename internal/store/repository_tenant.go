// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/models"
)

var tenantColumns = []string{"id", "name", "host", "active", "version", "created_at", "updated_at"}

// tenantRepository is the SQL implementation of [TenantRepository] over
// the "tenants" table. Queries are built with squirrel so the same code
// serves PostgreSQL and SQLite.
type tenantRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTenantRepository constructs a [TenantRepository] backed by db.
func NewTenantRepository(db *DB, logger *logger.Logger) TenantRepository {
	logger.Debug().Msg("creating tenant repository")
	return &tenantRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tenantRepository) FindByHost(ctx context.Context, host string) (models.Tenant, error) {
	return r.findOne(ctx, "*tenantRepository.FindByHost", sq.Eq{"host": host})
}

func (r *tenantRepository) FindByID(ctx context.Context, id string) (models.Tenant, error) {
	return r.findOne(ctx, "*tenantRepository.FindByID", sq.Eq{"id": id})
}

// Create inserts a tenant. A duplicate host yields [ErrHostAlreadyTaken].
func (r *tenantRepository) Create(ctx context.Context, tenant models.Tenant) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(tenant.TableName()).
		Columns("id", "name", "host", "active").
		Values(tenant.ID, tenant.Name, tenant.Host, tenant.Active).
		Suffix("RETURNING version, created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tenantRepository.Create").Msg("error building query")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&tenant.Version, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.Tenant{}, ErrHostAlreadyTaken
		}
		log.Err(err).
			Str("func", "*tenantRepository.Create").
			Str("host", tenant.Host).
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting tenant")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tenant, nil
}

// UpdateName applies an optimistic rename. When no row matches, the
// tenant is looked up again to tell a missing tenant from a stale version.
func (r *tenantRepository) UpdateName(ctx context.Context, id, name string, version int64) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(models.Tenant{}.TableName()).
		Set("name", name).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"version": version}).
		Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tenantRepository.UpdateName").Msg("error building query")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tenant, err := scanTenant(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return tenant, nil
	case errors.Is(err, sql.ErrNoRows):
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return models.Tenant{}, findErr
		}
		return models.Tenant{}, ErrVersionConflict
	default:
		log.Err(err).
			Str("func", "*tenantRepository.UpdateName").
			Str("tenant_id", id).
			Bool("retryable", r.db.retryable(err)).
			Msg("error updating tenant")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *tenantRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(tenantColumns...).
		From(models.Tenant{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error building query")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tenant, err := scanTenant(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return tenant, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Tenant{}, ErrTenantNotFound
	default:
		log.Err(err).Str("func", fn).Bool("retryable", r.db.retryable(err)).Msg("error querying tenant")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func scanTenant(row *sql.Row) (models.Tenant, error) {
	var t models.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Host, &t.Active, &t.Version, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
