package pets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/media"

	"github.com/go-chi/chi/v5"
)

// HandlerOptions agrupa dependencias opcionales de los handlers.
type HandlerOptions struct {
	Logger         logger.Logger
	MaxUploadBytes int64
}

func RegisterRoutes(r chi.Router, svc *Service, opts HandlerOptions) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"module": "pets"})

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log, opts.MaxUploadBytes))
		pr.Patch("/", updatePetHandler(svc, log, opts.MaxUploadBytes))
		pr.Delete("/", deletePetHandler(svc, log))

		// Disponibles = mascotas sin adopción (anti-join en el store)
		pr.Get("/available", listAvailablePetsHandler(svc, log))
		pr.Get("/{petID}", getPetHandler(svc, log))
	})
}

type petRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Breed       string  `json:"breed"`
	Sex         string  `json:"sex"`
	Age         *int    `json:"age"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Traits      *Traits `json:"traits" swaggertype:"string"`
	PrimaryCol  string  `json:"primaryCol"`
	AccentCol   string  `json:"accentCol"`
}

type updatePetRequest struct {
	ID          httpx.Int64 `json:"id" swaggertype:"integer"`
	Name        *string     `json:"name"`
	Type        *string     `json:"type"`
	Breed       *string     `json:"breed"`
	Sex         *string     `json:"sex"`
	Age         *int        `json:"age"`
	Location    *string     `json:"location"`
	Description *string     `json:"description"`
	Image       *string     `json:"image"`
	Traits      *Traits     `json:"traits" swaggertype:"string"`
	PrimaryCol  *string     `json:"primaryCol"`
	AccentCol   *string     `json:"accentCol"`
	IsLiked     *bool       `json:"isLiked"`
}

type deletePetRequest struct {
	ID httpx.Int64 `json:"id" swaggertype:"integer"`
}

type PetResponse struct {
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

// listPetsHandler godoc
// @Summary      List pets
// @Description  All pets, newest first.
// @Tags         pets
// @Produce      json
// @Success      200  {array}   PetResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list pets failed", map[string]any{"error": err})
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch pets")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// listAvailablePetsHandler godoc
// @Summary      List available pets
// @Description  Pets without any adoption record, newest first.
// @Tags         pets
// @Produce      json
// @Success      200  {array}   PetResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /pets/available [get]
func listAvailablePetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAvailable(r.Context())
		if err != nil {
			log.Error("list available pets failed", map[string]any{"error": err})
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch pets")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary      Get pet
// @Tags         pets
// @Produce      json
// @Param        petID  path      int  true  "Pet ID"
// @Success      200    {object}  PetResponse
// @Failure      400    {object}  httpx.ErrorResponse
// @Failure      404    {object}  httpx.ErrorResponse
// @Router       /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil || id <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid pet ID")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "Pet not found")
				return
			}
			log.Error("get pet failed", map[string]any{"error": err, "pet_id": id})
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch pet")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary      Create pet
// @Description  JSON body with a ready image URL, or multipart/form-data with an optional "file" part.
// @Tags         pets
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      petRequest  false  "Pet (JSON)"
// @Param        file  formData  file        false  "Image upload"
// @Success      201   {object}  PetResponse
// @Failure      400   {object}  httpx.ErrorResponse
// @Failure      500   {object}  httpx.ErrorResponse
// @Router       /pets [post]
func createPetHandler(svc *Service, log logger.Logger, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			in CreateInput
			up *media.Upload
		)

		if httpx.IsMultipart(r) {
			form, err := httpx.ParseForm(w, r, maxUpload)
			if err != nil {
				writeFormError(w, err)
				return
			}
			defer form.Close()

			age, err := form.Int("age")
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			if age == nil {
				httpx.WriteError(w, http.StatusBadRequest, "age is required")
				return
			}

			in = CreateInput{
				Name:        form.Value("name"),
				Type:        form.Value("type"),
				Breed:       form.Value("breed"),
				Sex:         form.Value("sex"),
				Age:         *age,
				Location:    form.Value("location"),
				Description: form.Value("description"),
				Image:       form.Value("image"),
				Traits:      form.Value("traits"),
				PrimaryCol:  form.Value("primaryCol"),
				AccentCol:   form.Value("accentCol"),
			}

			var closeFile func()
			up, closeFile, err = form.File("file")
			defer closeFile()
			if err != nil {
				log.Error("open pet upload failed", map[string]any{"error": err})
				httpx.WriteError(w, http.StatusInternalServerError, "Failed to create pet")
				return
			}
		} else {
			var req petRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			if req.Age == nil {
				httpx.WriteError(w, http.StatusBadRequest, "age is required")
				return
			}
			in = CreateInput{
				Name:        req.Name,
				Type:        req.Type,
				Breed:       req.Breed,
				Sex:         req.Sex,
				Age:         *req.Age,
				Location:    req.Location,
				Description: req.Description,
				Image:       req.Image,
				PrimaryCol:  req.PrimaryCol,
				AccentCol:   req.AccentCol,
			}
			if req.Traits != nil {
				in.Traits = string(*req.Traits)
			}
		}

		p, err := svc.Create(r.Context(), in, up)
		if err != nil {
			writeServiceError(w, log, err, "Failed to create pet")
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary      Update pet
// @Description  Sparse update: only present fields change. A "file" part replaces the image.
// @Tags         pets
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      updatePetRequest  false  "Patch (JSON)"
// @Param        file  formData  file              false  "Image upload"
// @Success      200   {object}  PetResponse
// @Failure      400   {object}  httpx.ErrorResponse
// @Failure      500   {object}  httpx.ErrorResponse
// @Router       /pets [patch]
func updatePetHandler(svc *Service, log logger.Logger, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			id    int64
			patch Patch
			up    *media.Upload
		)

		if httpx.IsMultipart(r) {
			form, err := httpx.ParseForm(w, r, maxUpload)
			if err != nil {
				writeFormError(w, err)
				return
			}
			defer form.Close()

			// id se valida antes de escribir cualquier archivo
			rawID, err := form.Int("id")
			if err != nil || rawID == nil || *rawID <= 0 {
				httpx.WriteError(w, http.StatusBadRequest, ErrIDRequired.Error())
				return
			}
			id = int64(*rawID)

			age, err := form.Int("age")
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}

			patch = Patch{
				Name:        form.String("name"),
				Type:        form.String("type"),
				Breed:       form.String("breed"),
				Sex:         form.String("sex"),
				Age:         age,
				Location:    form.String("location"),
				Description: form.String("description"),
				Image:       form.String("image"),
				Traits:      form.String("traits"),
				PrimaryCol:  form.String("primaryCol"),
				AccentCol:   form.String("accentCol"),
				IsLiked:     form.Bool("isLiked"),
			}

			var closeFile func()
			up, closeFile, err = form.File("file")
			defer closeFile()
			if err != nil {
				log.Error("open pet upload failed", map[string]any{"error": err})
				httpx.WriteError(w, http.StatusInternalServerError, "Failed to update pet")
				return
			}
		} else {
			var req updatePetRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			id = int64(req.ID)
			patch = Patch{
				Name:        req.Name,
				Type:        req.Type,
				Breed:       req.Breed,
				Sex:         req.Sex,
				Age:         req.Age,
				Location:    req.Location,
				Description: req.Description,
				Image:       req.Image,
				PrimaryCol:  req.PrimaryCol,
				AccentCol:   req.AccentCol,
				IsLiked:     req.IsLiked,
			}
			if req.Traits != nil {
				t := string(*req.Traits)
				patch.Traits = &t
			}
		}

		p, err := svc.Update(r.Context(), id, patch, up)
		if err != nil {
			writeServiceError(w, log, err, "Failed to update pet")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary      Delete pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        body  body      deletePetRequest  true  "Pet ID"
// @Success      200   {object}  httpx.MessageResponse
// @Failure      400   {object}  httpx.ErrorResponse
// @Failure      500   {object}  httpx.ErrorResponse
// @Router       /pets [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// body vacío = sin id (400 "Pet ID is required")
		var req deletePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.Delete(r.Context(), int64(req.ID)); err != nil {
			writeServiceError(w, log, err, "Failed to delete pet")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Pet deleted successfully"})
	}
}

// writeServiceError: 400 con el mensaje de validación, o 500 con mensaje fijo (la causa solo al log).
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, publicMsg string) {
	if msg, ok := apperr.AsValidation(err); ok {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}
	log.Error(publicMsg, map[string]any{"error": err})
	httpx.WriteError(w, http.StatusInternalServerError, publicMsg)
}

func writeFormError(w http.ResponseWriter, err error) {
	if httpx.IsTooLarge(err) {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, "Upload too large")
		return
	}
	httpx.WriteError(w, http.StatusBadRequest, "Invalid form data")
}

func toPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Sex:         p.Sex,
		Age:         p.Age,
		Location:    p.Location,
		Description: p.Description,
		Image:       p.Image,
		Traits:      p.Traits,
		PrimaryCol:  p.PrimaryCol,
		AccentCol:   p.AccentCol,
		IsLiked:     p.IsLiked,
		CreatedAt:   p.CreatedAt,
	}
}

func toPetResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
