package repositories

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"soundwave/pkg/utils"
)

// Filter narrows a list query. Filters are AND-combined.
type Filter = func(*gorm.DB) *gorm.DB

func Eq(column string, value interface{}) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// ILike matches term as a case-insensitive substring of column.
func ILike(column, term string) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" ILIKE ?", "%"+escapeLike(term)+"%")
	}
}

// HasElement matches rows whose text[] column contains value.
func HasElement(column, value string) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("? = ANY("+column+")", value)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// paginate runs the filtered count and the filtered page fetch concurrently.
// The two reads are independent; a slightly stale total is acceptable.
func paginate[T any](ctx context.Context, db *gorm.DB, q utils.PageQuery, order string, filters []Filter, preloads ...string) ([]T, int64, error) {
	base := db.WithContext(ctx).Model(new(T))
	for _, f := range filters {
		base = f(base)
	}

	var (
		items []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return base.Session(&gorm.Session{Context: gctx}).Count(&total).Error
	})
	g.Go(func() error {
		tx := base.Session(&gorm.Session{Context: gctx})
		for _, p := range preloads {
			tx = tx.Preload(p)
		}
		if order != "" {
			tx = tx.Order(order)
		}
		return tx.Offset(q.Offset()).Limit(q.Limit).Find(&items).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
