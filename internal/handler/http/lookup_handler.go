package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/retail-ops/internal/lookup"
	"github.com/vasiliy-maslov/retail-ops/internal/metrics"
)

const LookupPath = "/customers/lookup"

type LookupRequest struct {
	Email string `json:"email" validate:"required"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type LookupResponse struct {
	Success  bool              `json:"success"`
	Customer *CustomerResponse `json:"customer"`
	Orders   []lookup.Order    `json:"orders"`
	Summary  *lookup.Summary   `json:"summary"`
	Message  string            `json:"message,omitempty"`
}

type LookupHandler struct {
	service  lookup.Service
	validate *validator.Validate
}

func NewLookupHandler(service lookup.Service) *LookupHandler {
	return &LookupHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *LookupHandler) RegisterRoutes(router chi.Router) {
	router.Get(LookupPath, h.handleLookup)
	router.Post(LookupPath, h.handleLookup)
}

func (h *LookupHandler) handleLookup(w http.ResponseWriter, r *http.Request) {
	requestPayload, err := decodeLookupRequest(r)
	if err != nil {
		log.Warn().Err(err).Str("method", r.Method).Msg("Failed to decode lookup request")
		metrics.ObserveLookup(metrics.OutcomeInvalid)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			log.Error().Err(err).Type("validation_error_type", err).Msg("Unexpected error type during validation")
			metrics.ObserveLookup(metrics.OutcomeError)
			respondWithError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		metrics.ObserveLookup(metrics.OutcomeInvalid)
		respondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	result, err := h.service.Lookup(r.Context(), requestPayload.Email)
	if err != nil {
		statusCode := mapErrorToStatusCode(err)
		if statusCode == http.StatusBadRequest {
			metrics.ObserveLookup(metrics.OutcomeInvalid)
			respondWithError(w, statusCode, "Email is required")
			return
		}

		log.Error().Err(err).Str("email", lookup.NormalizeEmail(requestPayload.Email)).Msg("Failed to look up customer orders via service")
		metrics.ObserveLookup(metrics.OutcomeError)
		respondWithError(w, statusCode, errorMessage(err))
		return
	}

	responsePayload := LookupResponse{
		Success: true,
		Orders:  result.Orders,
		Summary: result.Summary,
		Message: result.Message,
	}
	if responsePayload.Orders == nil {
		responsePayload.Orders = []lookup.Order{}
	}

	if result.Customer != nil {
		responsePayload.Customer = &CustomerResponse{
			ID:        result.Customer.ID,
			Name:      result.Customer.Name,
			Email:     result.Customer.Email,
			Phone:     result.Customer.Phone,
			CreatedAt: result.Customer.CreatedAt,
		}
		metrics.ObserveLookup(metrics.OutcomeFound)
	} else {
		metrics.ObserveLookup(metrics.OutcomeNotFound)
	}

	respondWithJSON(w, http.StatusOK, responsePayload)
}

// decodeLookupRequest reads the email from the JSON body on POST, falling back to the
// query string when the body is empty, and from the query string otherwise.
func decodeLookupRequest(r *http.Request) (LookupRequest, error) {
	requestPayload := LookupRequest{Email: r.URL.Query().Get("email")}
	if r.Method != http.MethodPost || r.Body == nil {
		return requestPayload, nil
	}

	var body LookupRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if errors.Is(err, io.EOF) {
		return requestPayload, nil
	}
	if err != nil {
		return LookupRequest{}, err
	}

	if body.Email != "" {
		requestPayload.Email = body.Email
	}
	return requestPayload, nil
}
