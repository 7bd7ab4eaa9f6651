// Package catalog contiene la lógica de cliente sobre el listado de mascotas:
// reconciliación de disponibilidad, búsqueda, paginación y parsing de traits.
// No hace I/O; internal/client y internal/tui la consumen.
package catalog

import "time"

const (
	PageSize       = 12
	PageWindowSize = 5
	HomePets       = 8
	HomeReviews    = 10
	CardTraits     = 3
	MaxDescription = 320
	MaxTraits      = 12
)

type Pet struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Breed       string    `json:"breed"`
	Sex         string    `json:"sex"`
	Age         int       `json:"age"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Traits      string    `json:"traits"`
	PrimaryCol  string    `json:"primaryCol"`
	AccentCol   string    `json:"accentCol"`
	IsLiked     bool      `json:"isLiked"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Review struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PetName   string    `json:"petName"`
	Img       string    `json:"img"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
}

type Adoption struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PetID     int64     `json:"petId"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	PhoneNo   string    `json:"phoneNo"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reconcile devuelve las mascotas sin adopción, en el orden recibido.
func Reconcile(pets []Pet, adoptions []Adoption) []Pet {
	adopted := make(map[int64]struct{}, len(adoptions))
	for _, a := range adoptions {
		adopted[a.PetID] = struct{}{}
	}

	out := make([]Pet, 0, len(pets))
	for _, p := range pets {
		if _, ok := adopted[p.ID]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Take devuelve los primeros n elementos (home: 8 mascotas, 10 reseñas).
func Take[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
