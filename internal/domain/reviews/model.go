package reviews

import "time"

// Review es un testimonio de un adoptante. PetName es texto libre (sin FK).
type Review struct {
	ID        int64
	Name      string
	PetName   string
	Img       string
	Rating    int // se espera 1-5, no se valida
	Review    string
	CreatedAt time.Time
}
