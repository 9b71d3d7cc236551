package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/transport/middleware"
	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

// Loaders read straight from the repositories, bypassing the services.
// They are bound to the caller's church, so they can only ever resolve
// names of the caller's own tenant.

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userBatchRepo interface {
	GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.User, error)
}

type unitBatchRepo interface {
	GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.Unit, error)
}

// LoaderRepos holds the repositories the per-request loaders batch into.
type LoaderRepos struct {
	Users userBatchRepo
	Units unitBatchRepo
}

// Loaders are the per-request batched lookups used when rendering views.
type Loaders struct {
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
	UnitByID *dataloader.Loader[uuid.UUID, *domain.Unit]
}

// NewLoaders creates loaders scoped to one church. They cache for their
// whole lifetime, so create them per request.
func NewLoaders(churchID uuid.UUID, repos LoaderRepos) *Loaders {
	return &Loaders{
		UserByID: newLoader(batchByID(churchID, repos.Users.GetByIDs, func(u *domain.User) uuid.UUID { return u.ID })),
		UnitByID: newLoader(batchByID(churchID, repos.Units.GetByIDs, func(u *domain.Unit) uuid.UUID { return u.ID })),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// batchByID adapts a GetByIDs repository call. Ids the repository does not
// return resolve to nil without an error.
func batchByID[V any](
	churchID uuid.UUID,
	get func(context.Context, uuid.UUID, []uuid.UUID) ([]V, error),
	key func(V) uuid.UUID,
) dataloader.BatchFunc[uuid.UUID, V] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[V] {
		rows, err := get(ctx, churchID, keys)
		if err != nil {
			results := make([]*dataloader.Result[V], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[V]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]V, len(rows))
		for _, row := range rows {
			byID[key(row)] = row
		}

		results := make([]*dataloader.Result[V], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[V]{Data: byID[k]}
		}
		return results
	}
}

type loadersKey struct{}

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, l)
}

func loadersFrom(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey{}).(*Loaders)
	return l
}

// LoadersMiddleware attaches loaders for the authenticated caller's church.
// It must run inside Auth; anonymous requests get none.
func LoadersMiddleware(repos LoaderRepos) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			churchID, ok := ctxutil.ChurchIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := WithLoaders(r.Context(), NewLoaders(churchID, repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loadUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	l := loadersFrom(ctx)
	if l == nil || len(ids) == 0 {
		return map[uuid.UUID]*domain.User{}, nil
	}
	return loadMany(ctx, l.UserByID, ids)
}

func loadUnits(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Unit, error) {
	l := loadersFrom(ctx)
	if l == nil || len(ids) == 0 {
		return map[uuid.UUID]*domain.Unit{}, nil
	}
	return loadMany(ctx, l.UnitByID, ids)
}

func loadMany[V any](ctx context.Context, l *dataloader.Loader[uuid.UUID, V], ids []uuid.UUID) (map[uuid.UUID]V, error) {
	values, errs := l.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	out := make(map[uuid.UUID]V, len(ids))
	for i, id := range ids {
		out[id] = values[i]
	}
	return out, nil
}
