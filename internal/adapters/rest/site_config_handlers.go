package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
	"palais-immobilier-api/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type SiteConfigHandlers struct {
	getUC           usecases_port.GetSiteConfigUseCase
	toggleUC        usecases_port.ToggleEditModeUseCase
	saveUC          usecases_port.SaveSiteConfigUseCase
	addHeroUC       usecases_port.AddHeroImageUseCase
	updateHeroUC    usecases_port.UpdateHeroImageUseCase
	removeHeroUC    usecases_port.RemoveHeroImageUseCase
	socialLinkUC    usecases_port.UpdateSocialLinkUseCase
	legalPageUC     usecases_port.SetLegalPageUseCase
	cookieConsentUC usecases_port.UpdateCookieConsentUseCase
	sectionUC       usecases_port.SetSectionEnabledUseCase
}

func NewSiteConfigHandlers(
	getUC usecases_port.GetSiteConfigUseCase,
	toggleUC usecases_port.ToggleEditModeUseCase,
	saveUC usecases_port.SaveSiteConfigUseCase,
	addHeroUC usecases_port.AddHeroImageUseCase,
	updateHeroUC usecases_port.UpdateHeroImageUseCase,
	removeHeroUC usecases_port.RemoveHeroImageUseCase,
	socialLinkUC usecases_port.UpdateSocialLinkUseCase,
	legalPageUC usecases_port.SetLegalPageUseCase,
	cookieConsentUC usecases_port.UpdateCookieConsentUseCase,
	sectionUC usecases_port.SetSectionEnabledUseCase) *SiteConfigHandlers {
	return &SiteConfigHandlers{
		getUC:           getUC,
		toggleUC:        toggleUC,
		saveUC:          saveUC,
		addHeroUC:       addHeroUC,
		updateHeroUC:    updateHeroUC,
		removeHeroUC:    removeHeroUC,
		socialLinkUC:    socialLinkUC,
		legalPageUC:     legalPageUC,
		cookieConsentUC: cookieConsentUC,
		sectionUC:       sectionUC,
	}
}

// GetSiteConfig handles GET /site-config. Public: the frontend renders the
// whole site from this answer.
func (h *SiteConfigHandlers) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.getUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load site configuration")
		return
	}
	RespondWithJSON(w, http.StatusOK, toSiteConfigResponse(cfg))
}

// ToggleEditMode handles POST /site-config/edit-mode (admin only).
func (h *SiteConfigHandlers) ToggleEditMode(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	enabled, err := h.toggleUC.Execute(r.Context(), claims.Role)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to toggle edit mode")
		return
	}

	RespondWithJSON(w, http.StatusOK, EditModeResponse{IsEditMode: enabled})
}

// SaveSiteConfig handles POST /site-config/save. A save already in flight
// answers 409.
func (h *SiteConfigHandlers) SaveSiteConfig(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SaveSiteConfig"})

	if err := h.saveUC.Execute(r.Context()); err != nil {
		if errors.Is(err, domain.ErrSaveInProgress) {
			WriteJSONError(w, http.StatusConflict, "A save is already in progress")
			return
		}
		logger.Error("Save use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save site configuration")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// AddHeroImage handles POST /site-config/hero-images.
func (h *SiteConfigHandlers) AddHeroImage(w http.ResponseWriter, r *http.Request) {
	var req AddHeroImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	img, err := h.addHeroUC.Execute(r.Context(), req.URL, req.Alt)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			WriteJSONError(w, http.StatusBadRequest, "Image URL is required")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add hero image")
		return
	}

	RespondWithJSON(w, http.StatusCreated, HeroImageResponse(*img))
}

// UpdateHeroImage handles PATCH /site-config/hero-images/{imageID}.
// An unknown image id is a silent no-op, mirroring the in-place editor.
func (h *SiteConfigHandlers) UpdateHeroImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	var req HeroImagePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := domain.HeroImagePatch{URL: req.URL, Alt: req.Alt, Order: req.Order}
	if err := h.updateHeroUC.Execute(r.Context(), imageID, patch); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update hero image")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RemoveHeroImage handles DELETE /site-config/hero-images/{imageID}.
func (h *SiteConfigHandlers) RemoveHeroImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	if err := h.removeHeroUC.Execute(r.Context(), imageID); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove hero image")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateSocialLink handles PATCH /site-config/social-links/{linkID}.
func (h *SiteConfigHandlers) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkID")

	var req SocialLinkPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := domain.SocialLinkPatch{URL: req.URL, Enabled: req.Enabled}
	if err := h.socialLinkUC.Execute(r.Context(), linkID, patch); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update social link")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SetLegalPage handles PUT /site-config/legal-pages/{pageKey}.
func (h *SiteConfigHandlers) SetLegalPage(w http.ResponseWriter, r *http.Request) {
	pageKey := chi.URLParam(r, "pageKey")

	var req LegalPageResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.legalPageUC.Execute(r.Context(), pageKey, domain.LegalPage(req)); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			WriteJSONError(w, http.StatusBadRequest, "Unknown legal page key")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update legal page")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateCookieConsent handles PUT /site-config/cookie-consent.
func (h *SiteConfigHandlers) UpdateCookieConsent(w http.ResponseWriter, r *http.Request) {
	var req CookieConsentDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.cookieConsentUC.Execute(r.Context(), domain.CookieConsent(req)); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update cookie consent")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SetSectionEnabled handles PUT /site-config/sections/{sectionID}.
func (h *SiteConfigHandlers) SetSectionEnabled(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")

	var req SetSectionEnabledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.sectionUC.Execute(r.Context(), sectionID, req.Enabled); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update section")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
