package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

var policyColumns = []string{
	"id",
	"resource_id",
	"resource_type",
	"advance_booking_days",
	"min_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с политиками бронирования ресурсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPolicyWithHierarchy получает политику с учетом иерархии приоритетов:
// 1. Политика конкретного ресурса (resource_id)
// 2. Политика типа ресурса (resource_type)
// 3. Глобальная политика (оба поля NULL)
// Возвращает ErrPolicyNotFound, если ни один уровень не настроен
func (r *Repository) GetPolicyWithHierarchy(ctx context.Context, resourceID int64, resourceType string) (*domain.ResourceBookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Один запрос по всем трём уровням; сортировка ставит более
	// специфичную политику первой
	query, args, err := psqlbuilder.Select(policyColumns...).
		From("resource_booking_policies").
		Where(squirrel.Or{
			squirrel.Eq{"resource_id": resourceID},
			squirrel.And{
				squirrel.Eq{"resource_id": nil},
				squirrel.Eq{"resource_type": resourceType},
			},
			squirrel.And{
				squirrel.Eq{"resource_id": nil},
				squirrel.Eq{"resource_type": nil},
			},
		}).
		OrderBy("resource_id NULLS LAST, resource_type NULLS LAST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicyWithHierarchy - build select query: %v", ErrBuildQuery, err)
	}

	policy, err := r.scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicyWithHierarchy - scan policy: %v", ErrScanRow, err)
	}

	return policy, nil
}

// GetByResourceID получает политику, заданную для конкретного ресурса
// Без фолбэка на тип или глобальный уровень
func (r *Repository) GetByResourceID(ctx context.Context, resourceID int64) (*domain.ResourceBookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(policyColumns...).
		From("resource_booking_policies").
		Where(squirrel.Eq{"resource_id": resourceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceID - build select query: %v", ErrBuildQuery, err)
	}

	policy, err := r.scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceID - scan policy: %v", ErrScanRow, err)
	}

	return policy, nil
}

// Upsert создает или обновляет политику конкретного ресурса
func (r *Repository) Upsert(ctx context.Context, policy *domain.ResourceBookingPolicy) (*domain.ResourceBookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resource_booking_policies").
		Columns(
			"resource_id",
			"resource_type",
			"advance_booking_days",
			"min_notice_minutes",
		).
		Values(
			policy.ResourceID,
			policy.ResourceType,
			policy.AdvanceBookingDays,
			policy.MinNoticeMinutes,
		).
		Suffix(`ON CONFLICT (resource_id) WHERE resource_id IS NOT NULL DO UPDATE SET
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_notice_minutes = EXCLUDED.min_notice_minutes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanPolicy(row rowScanner) (*domain.ResourceBookingPolicy, error) {
	var policy domain.ResourceBookingPolicy
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&policy.ID,
		&policy.ResourceID,
		&policy.ResourceType,
		&policy.AdvanceBookingDays,
		&policy.MinNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}
