package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meusistema/clientes/internal/pkg/pagination"
)

// FindPage counts every row of T and loads the slice selected by p. Without sort keys
// rows come back in id order.
func FindPage[T any](ctx context.Context, db *gorm.DB, p pagination.Pageable) (*pagination.Page[T], error) {
	var model T
	var total int64
	if err := db.WithContext(ctx).Model(&model).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	results := []T{}
	if total > int64(p.Offset()) {
		q := db.WithContext(ctx).Model(&model)
		for _, o := range p.Sort {
			q = q.Order(clause.OrderByColumn{
				Column: clause.Column{Name: o.Column},
				Desc:   o.Direction == pagination.Desc,
			})
		}
		// id last keeps pages stable when sort keys tie.
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
		if err := q.Offset(p.Offset()).Limit(p.Size).Find(&results).Error; err != nil {
			return nil, fmt.Errorf("find page: %w", err)
		}
	}
	return pagination.NewPage(results, p, total), nil
}
