package adoptions

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"module": "adoptions"})

	r.Route("/adopt", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc, log))
		ar.Post("/", createAdoptionHandler(svc, log))
	})
}

type createAdoptionRequest struct {
	Name    string      `json:"name"`
	PetID   httpx.Int64 `json:"petId" swaggertype:"integer"`
	Address string      `json:"address"`
	Email   string      `json:"email"`
	PhoneNo string      `json:"phoneNo"`
	Reason  string      `json:"reason"`
}

type AdoptionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PetID     int64     `json:"petId"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	PhoneNo   string    `json:"phoneNo"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// listAdoptionsHandler godoc
// @Summary      List adoptions
// @Tags         adopt
// @Produce      json
// @Success      200  {array}   AdoptionResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /adopt [get]
func listAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list adoptions failed", map[string]any{"error": err})
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch adoptions")
			return
		}

		out := make([]AdoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createAdoptionHandler godoc
// @Summary      Submit adoption request
// @Tags         adopt
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      createAdoptionRequest  true  "Adoption"
// @Success      201   {object}  AdoptionResponse
// @Failure      400   {object}  httpx.ErrorResponse
// @Failure      413   {object}  httpx.ErrorResponse
// @Failure      500   {object}  httpx.ErrorResponse
// @Router       /adopt [post]
func createAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput

		if httpx.IsMultipart(r) {
			// sin archivos, 1MB alcanza
			form, err := httpx.ParseForm(w, r, 1<<20)
			if err != nil {
				if httpx.IsTooLarge(err) {
					httpx.WriteError(w, http.StatusRequestEntityTooLarge, "Upload too large")
					return
				}
				httpx.WriteError(w, http.StatusBadRequest, "Invalid form data")
				return
			}
			defer form.Close()

			petID, err := form.Int("petId")
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in = CreateInput{
				Name:    form.Value("name"),
				Address: form.Value("address"),
				Email:   form.Value("email"),
				PhoneNo: form.Value("phoneNo"),
				Reason:  form.Value("reason"),
			}
			if petID != nil {
				in.PetID = int64(*petID)
			}
		} else {
			var req createAdoptionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			in = CreateInput{
				Name:    req.Name,
				PetID:   int64(req.PetID),
				Address: req.Address,
				Email:   req.Email,
				PhoneNo: req.PhoneNo,
				Reason:  req.Reason,
			}
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			if msg, ok := apperr.AsValidation(err); ok {
				httpx.WriteError(w, http.StatusBadRequest, msg)
				return
			}
			log.Error("create adoption failed", map[string]any{"error": err, "pet_id": in.PetID})
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to create adopt")
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

func toAdoptionResponse(a Adoption) AdoptionResponse {
	return AdoptionResponse{
		ID:        a.ID,
		Name:      a.Name,
		PetID:     a.PetID,
		Address:   a.Address,
		Email:     a.Email,
		PhoneNo:   a.PhoneNo,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
	}
}
