package pets

import "context"

type Repository interface {
	// Create persiste p y devuelve el registro con ID asignado por el store.
	Create(ctx context.Context, p Pet) (Pet, error)
	// Update escribe solo los campos no-nil del patch y devuelve la fila resultante.
	Update(ctx context.Context, id int64, patch Patch) (Pet, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Pet, error)

	// List devuelve todas las mascotas, created_at desc.
	List(ctx context.Context) ([]Pet, error)
	// ListAvailable excluye las mascotas con al menos una adopción registrada.
	ListAvailable(ctx context.Context) ([]Pet, error)
}
