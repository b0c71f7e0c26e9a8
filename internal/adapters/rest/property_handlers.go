package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/contracts"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
	"palais-immobilier-api/internal/core/port/usecases_port"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type PropertyHandlers struct {
	findUC      usecases_port.FindPropertiesUseCase
	detailsUC   usecases_port.GetPropertyDetailsUseCase
	nearbyUC    usecases_port.GetNearbyPropertiesUseCase
	recordUC    usecases_port.RecordViewUseCase
	createUC    usecases_port.CreatePropertyUseCase
	updateUC    usecases_port.UpdatePropertyUseCase
	deleteUC    usecases_port.DeletePropertyUseCase
	approveUC   usecases_port.ApprovePropertyUseCase
	agentListUC usecases_port.GetAgentPropertiesUseCase
}

func NewPropertyHandlers(
	findUC usecases_port.FindPropertiesUseCase,
	detailsUC usecases_port.GetPropertyDetailsUseCase,
	nearbyUC usecases_port.GetNearbyPropertiesUseCase,
	recordUC usecases_port.RecordViewUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	approveUC usecases_port.ApprovePropertyUseCase,
	agentListUC usecases_port.GetAgentPropertiesUseCase) *PropertyHandlers {
	return &PropertyHandlers{
		findUC:      findUC,
		detailsUC:   detailsUC,
		nearbyUC:    nearbyUC,
		recordUC:    recordUC,
		createUC:    createUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		approveUC:   approveUC,
		agentListUC: agentListUC,
	}
}

// criteriaFromQuery assembles the filter criteria from query parameters.
// An absent parameter means "match everything".
func criteriaFromQuery(r *http.Request) (domain.Criteria, error) {
	q := r.URL.Query()

	criteria := domain.Criteria{
		City:         q.Get("city"),
		ListingType:  domain.ListingType(q.Get("listingType")),
		PropertyType: domain.PropertyType(q.Get("propertyType")),
		Status:       domain.PropertyStatus(q.Get("status")),
		Featured:     q.Get("featured") == "true",
	}

	if s := q.Get("minPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return criteria, err
		}
		criteria.MinPrice = &v
	}
	if s := q.Get("maxPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return criteria, err
		}
		criteria.MaxPrice = &v
	}
	if s := q.Get("bedrooms"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return criteria, err
		}
		criteria.Bedrooms = &v
	}
	if s := q.Get("bathrooms"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return criteria, err
		}
		criteria.Bathrooms = &v
	}

	return criteria, nil
}

// FindProperties handles GET /properties, the public catalog search.
func (h *PropertyHandlers) FindProperties(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid filter parameter")
		return
	}
	// Unapproved listings never reach the public catalog.
	criteria.ApprovedOnly = true

	sortKey := domain.ParseSortKey(r.URL.Query().Get("sort"))

	limit, err := GetLimitOrDefault(r, 0)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid offset parameter")
		return
	}

	result, err := h.findUC.Execute(r.Context(), criteria, sortKey, limit, offset)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedPropertiesResponse{
		Data:   toPropertyResponses(result.Properties),
		Total:  result.TotalCount,
		Limit:  limit,
		Offset: offset,
	})
}

// GetPropertyDetails handles GET /properties/{propertyID}.
func (h *PropertyHandlers) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	property, err := h.detailsUC.Execute(r.Context(), propertyID, ClaimsFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load property")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(property))
}

// GetNearbyProperties handles GET /properties/{propertyID}/nearby.
func (h *PropertyHandlers) GetNearbyProperties(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	limit, err := GetLimitOrDefault(r, 6)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	neighbors, err := h.nearbyUC.Execute(r.Context(), propertyID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load nearby properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(neighbors))
}

// RecordView handles POST /properties/{propertyID}/view.
func (h *PropertyHandlers) RecordView(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	views, err := h.recordUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to record view")
		return
	}

	RespondWithJSON(w, http.StatusOK, ViewCountResponse{ID: propertyID, ViewCount: views})
}

// decodePropertyPayload validates the body against the contract schema and
// decodes it.
func decodePropertyPayload(r *http.Request) (*PropertyPayload, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	if err := contracts.ValidatePropertyPayload(body); err != nil {
		return nil, err
	}

	var payload PropertyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateProperty handles POST /properties (agent or admin).
func (h *PropertyHandlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	payload, err := decodePropertyPayload(r)
	if err != nil {
		logger.Warn("Invalid property payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUC.Execute(r.Context(), payload.toDomain(), *claims)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			WriteJSONError(w, http.StatusBadRequest, "Property id already exists")
			return
		}
		logger.Error("Create use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(created))
}

// UpdateProperty handles PUT /properties/{propertyID} (full replace).
func (h *PropertyHandlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	payload, err := decodePropertyPayload(r)
	if err != nil {
		logger.Warn("Invalid property payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	property := payload.toDomain()
	property.ID = chi.URLParam(r, "propertyID")

	updated, err := h.updateUC.Execute(r.Context(), property, *claims)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Forbidden")
		default:
			logger.Error("Update use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update property")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(updated))
}

// DeleteProperty handles DELETE /properties/{propertyID}.
func (h *PropertyHandlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	propertyID := chi.URLParam(r, "propertyID")

	if err := h.deleteUC.Execute(r.Context(), propertyID, *claims); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Forbidden")
		default:
			WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": propertyID})
}

// ApproveProperty handles POST /properties/{propertyID}/approve (admin only).
func (h *PropertyHandlers) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	property, err := h.approveUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to approve property")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(property))
}

// GetAgentProperties handles GET /agent/properties, the agent dashboard
// listing. Unapproved properties are included.
func (h *PropertyHandlers) GetAgentProperties(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Admins may inspect another agent's portfolio via ?agentId=.
	agentID := claims.UserID
	if requested := r.URL.Query().Get("agentId"); requested != "" && claims.Role == domain.RoleAdmin {
		agentID = requested
	}

	properties, err := h.agentListUC.Execute(r.Context(), agentID)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load agent properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}
