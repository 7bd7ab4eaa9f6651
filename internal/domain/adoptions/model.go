package adoptions

import "time"

// Adoption es una solicitud de adopción. Que exista una para un PetID es lo
// único que marca a esa mascota como no disponible (no hay FK ni status en Pet).
type Adoption struct {
	ID        int64
	Name      string
	PetID     int64
	Address   string
	Email     string
	PhoneNo   string
	Reason    string
	CreatedAt time.Time
}

// AdoptedPetIDs arma el set de mascotas con al menos una adopción.
func AdoptedPetIDs(items []Adoption) map[int64]struct{} {
	out := make(map[int64]struct{}, len(items))
	for _, a := range items {
		out[a.PetID] = struct{}{}
	}
	return out
}
