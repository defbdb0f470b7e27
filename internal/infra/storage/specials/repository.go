package specials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
	"github.com/m04kA/LittleLemon-ReservationService/pkg/psqlbuilder"
)

const tableName = "weekly_specials"

// Repository репозиторий меню недели (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню недели
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает активные позиции меню недели в порядке отображения.
// Проверка цены и рейтинга здесь не выполняется, это делает сервис.
func (r *Repository) List(ctx context.Context) ([]domain.SpecialItem, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"rating",
		"prep_time",
		"image",
		"description",
	).
		From(tableName).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanItems(rows)
}

// scanItems сканирует результаты запроса в слайс позиций меню
func (r *Repository) scanItems(rows *sql.Rows) ([]domain.SpecialItem, error) {
	items := make([]domain.SpecialItem, 0)

	for rows.Next() {
		var item domain.SpecialItem
		var prepTime, image, description sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.Rating,
			&prepTime,
			&image,
			&description,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanItems - scan row: %v", ErrScanRow, err)
		}

		item.PrepTime = prepTime.String
		item.Image = image.String
		item.Description = description.String

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
