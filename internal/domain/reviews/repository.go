package reviews

import "context"

type Repository interface {
	Create(ctx context.Context, rv Review) (Review, error)
	List(ctx context.Context) ([]Review, error)
}
