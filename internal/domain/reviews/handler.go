package reviews

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/media"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, maxUpload int64) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"module": "reviews"})

	r.Route("/reviews", func(rr chi.Router) {
		rr.Get("/", listReviewsHandler(svc, log))
		rr.Post("/", createReviewHandler(svc, log, maxUpload))
	})
}

type createReviewRequest struct {
	Name    string      `json:"name"`
	PetName string      `json:"petName"`
	Img     string      `json:"img"`
	Rating  httpx.Int64 `json:"rating" swaggertype:"integer"`
	Review  string      `json:"review"`
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PetName   string    `json:"petName"`
	Img       string    `json:"img"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
}

// listReviewsHandler godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   ReviewResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /reviews [get]
func listReviewsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list reviews failed", map[string]any{"error": err})
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch reviews")
			return
		}

		out := make([]ReviewResponse, 0, len(items))
		for _, rv := range items {
			out = append(out, toReviewResponse(rv))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createReviewHandler godoc
// @Summary      Create review
// @Description  JSON with an image URL in "img", or multipart/form-data with an optional "file" part.
// @Tags         reviews
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      createReviewRequest  false  "Review (JSON)"
// @Param        file  formData  file                 false  "Image upload"
// @Success      201   {object}  ReviewResponse
// @Failure      400   {object}  httpx.ErrorResponse
// @Failure      500   {object}  httpx.ErrorResponse
// @Router       /reviews [post]
func createReviewHandler(svc *Service, log logger.Logger, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			in CreateInput
			up *media.Upload
		)

		if httpx.IsMultipart(r) {
			form, err := httpx.ParseForm(w, r, maxUpload)
			if err != nil {
				if httpx.IsTooLarge(err) {
					httpx.WriteError(w, http.StatusRequestEntityTooLarge, "Upload too large")
					return
				}
				httpx.WriteError(w, http.StatusBadRequest, "Invalid form data")
				return
			}
			defer form.Close()

			rating, err := form.Int("rating")
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			in = CreateInput{
				Name:    form.Value("name"),
				PetName: form.Value("petName"),
				Img:     form.Value("img"),
				Review:  form.Value("review"),
			}
			if rating != nil {
				in.Rating = *rating
			}

			var closeFile func()
			up, closeFile, err = form.File("file")
			defer closeFile()
			if err != nil {
				log.Error("open review upload failed", map[string]any{"error": err})
				httpx.WriteError(w, http.StatusInternalServerError, "Failed to create review")
				return
			}
		} else {
			var req createReviewRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			in = CreateInput{
				Name:    req.Name,
				PetName: req.PetName,
				Img:     req.Img,
				Rating:  int(req.Rating),
				Review:  req.Review,
			}
		}

		rv, err := svc.Create(r.Context(), in, up)
		if err != nil {
			if msg, ok := apperr.AsValidation(err); ok {
				httpx.WriteError(w, http.StatusBadRequest, msg)
				return
			}
			log.Error("create review failed", map[string]any{"error": err})
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to create review")
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toReviewResponse(rv))
	}
}

func toReviewResponse(rv Review) ReviewResponse {
	return ReviewResponse{
		ID:        rv.ID,
		Name:      rv.Name,
		PetName:   rv.PetName,
		Img:       rv.Img,
		Rating:    rv.Rating,
		Review:    rv.Review,
		CreatedAt: rv.CreatedAt,
	}
}
