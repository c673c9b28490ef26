package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Load читает активные позиции каталога. Вызывается один раз при старте.
func (r *Repo) Load(ctx context.Context) (Catalog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, name, price, COALESCE(meat_type,''), volume_ml, servings,
		       alcoholic, proportional, portion_g, package_g, COALESCE(image,'')
		FROM catalog_items
		WHERE active = TRUE
		ORDER BY kind, position, id
	`)
	if err != nil {
		return Catalog{}, err
	}
	defer rows.Close()

	var c Catalog
	for rows.Next() {
		var (
			kind, name, meatType, image string
			price, volume, portion, pkg float64
			servings                    int
			alcoholic, proportional     bool
		)
		if err := rows.Scan(&kind, &name, &price, &meatType, &volume, &servings,
			&alcoholic, &proportional, &portion, &pkg, &image); err != nil {
			return Catalog{}, err
		}
		switch Kind(kind) {
		case KindMeat:
			c.Meats = append(c.Meats, Meat{Name: name, Price: price, Type: MeatType(meatType), Image: image})
		case KindDrink:
			c.Drinks = append(c.Drinks, Drink{Name: name, Price: price, VolumeML: volume, Servings: servings, Alcoholic: alcoholic, Image: image})
		case KindConsumable:
			c.Consumables = append(c.Consumables, Consumable{Name: name, Price: price, Proportional: proportional, Image: image})
		case KindSideDish:
			c.SideDishes = append(c.SideDishes, SideDish{Name: name, Price: price, PortionG: portion, PackageG: pkg, Image: image})
		default:
			return Catalog{}, fmt.Errorf("catalog item %q: unknown kind %q", name, kind)
		}
	}
	return c, rows.Err()
}

// LoadOrDefault возвращает встроенный каталог, если в БД позиций нет.
func (r *Repo) LoadOrDefault(ctx context.Context) (Catalog, error) {
	c, err := r.Load(ctx)
	if err != nil {
		return Default(), err
	}
	if c.Empty() {
		return Default(), nil
	}
	return c, nil
}
