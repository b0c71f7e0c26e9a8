package rest

import (
	"palais-immobilier-api/internal/core/domain"
	"time"
)

// LoginRequest - the login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ValidateTokenRequest - the token validation body.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type ValidateTokenResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	// LandingPage is the fixed per-role redirect target the frontend uses
	// after login and on role-mismatch guards.
	LandingPage string `json:"landingPage"`
}

// UserResponse - a user without credentials.
type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Listings       int    `json:"listings,omitempty"`
	SoldProperties int    `json:"soldProperties,omitempty"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		Role:           string(u.Role),
		Email:          u.Email,
		Phone:          u.Phone,
		Bio:            u.Bio,
		Listings:       u.Listings,
		SoldProperties: u.SoldProperties,
	}
}

// PropertyPayload - the property create/update body. Validated against the
// embedded JSON Schema before decoding.
type PropertyPayload struct {
	ID           string   `json:"id,omitempty"`
	Price        float64  `json:"price"`
	ListingType  string   `json:"listingType"`
	Status       string   `json:"status"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	SurfaceArea  float64  `json:"surfaceArea"`
	YearBuilt    int      `json:"yearBuilt"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	ZipCode      string   `json:"zipCode,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	HasPool      bool     `json:"hasPool"`
	HasParking   bool     `json:"hasParking"`
	HasGarden    bool     `json:"hasGarden"`
	HasAC        bool     `json:"hasAC"`
	HasGym       bool     `json:"hasGym"`
	HasElevator  bool     `json:"hasElevator"`
	HasSecurity  bool     `json:"hasSecurity"`
	Images       []string `json:"images"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	VirtualTour  string   `json:"virtualTour,omitempty"`
	Featured     bool     `json:"featured"`
	AgentID      string   `json:"agentId,omitempty"`
	AgentName    string   `json:"agentName,omitempty"`
}

func (p *PropertyPayload) toDomain() domain.Property {
	return domain.Property{
		ID:           p.ID,
		Price:        p.Price,
		ListingType:  domain.ListingType(p.ListingType),
		Status:       domain.PropertyStatus(p.Status),
		PropertyType: domain.PropertyType(p.PropertyType),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		SurfaceArea:  p.SurfaceArea,
		YearBuilt:    p.YearBuilt,
		Address:      p.Address,
		City:         p.City,
		Neighborhood: p.Neighborhood,
		ZipCode:      p.ZipCode,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		HasPool:      p.HasPool,
		HasParking:   p.HasParking,
		HasGarden:    p.HasGarden,
		HasAC:        p.HasAC,
		HasGym:       p.HasGym,
		HasElevator:  p.HasElevator,
		HasSecurity:  p.HasSecurity,
		Images:       p.Images,
		VideoURL:     p.VideoURL,
		VirtualTour:  p.VirtualTour,
		Featured:     p.Featured,
		AgentID:      p.AgentID,
		AgentName:    p.AgentName,
	}
}

// PropertyResponse - one listing as the frontend consumes it.
type PropertyResponse struct {
	ID           string   `json:"id"`
	Price        float64  `json:"price"`
	ListingType  string   `json:"listingType"`
	Status       string   `json:"status"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	SurfaceArea  float64  `json:"surfaceArea"`
	YearBuilt    int      `json:"yearBuilt"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	ZipCode      string   `json:"zipCode,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	HasPool      bool     `json:"hasPool"`
	HasParking   bool     `json:"hasParking"`
	HasGarden    bool     `json:"hasGarden"`
	HasAC        bool     `json:"hasAC"`
	HasGym       bool     `json:"hasGym"`
	HasElevator  bool     `json:"hasElevator"`
	HasSecurity  bool     `json:"hasSecurity"`
	Images       []string `json:"images"`
	MainImage    string   `json:"mainImage,omitempty"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	VirtualTour  string   `json:"virtualTour,omitempty"`
	Featured     bool     `json:"featured"`
	Approved     bool     `json:"approved"`
	ViewCount    int      `json:"viewCount"`
	AgentID      string   `json:"agentId"`
	AgentName    string   `json:"agentName,omitempty"`
	CreatedAt    string   `json:"createdAt"`
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Price:        p.Price,
		ListingType:  string(p.ListingType),
		Status:       string(p.Status),
		PropertyType: string(p.PropertyType),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		SurfaceArea:  p.SurfaceArea,
		YearBuilt:    p.YearBuilt,
		Address:      p.Address,
		City:         p.City,
		Neighborhood: p.Neighborhood,
		ZipCode:      p.ZipCode,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		HasPool:      p.HasPool,
		HasParking:   p.HasParking,
		HasGarden:    p.HasGarden,
		HasAC:        p.HasAC,
		HasGym:       p.HasGym,
		HasElevator:  p.HasElevator,
		HasSecurity:  p.HasSecurity,
		Images:       p.Images,
		MainImage:    p.MainImage(),
		VideoURL:     p.VideoURL,
		VirtualTour:  p.VirtualTour,
		Featured:     p.Featured,
		Approved:     p.Approved,
		ViewCount:    p.ViewCount,
		AgentID:      p.AgentID,
		AgentName:    p.AgentName,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, toPropertyResponse(&properties[i]))
	}
	return out
}

// PaginatedPropertiesResponse - list answer with pagination info.
type PaginatedPropertiesResponse struct {
	Data   []PropertyResponse `json:"data"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type ViewCountResponse struct {
	ID        string `json:"id"`
	ViewCount int    `json:"viewCount"`
}

// --- Site configuration DTOs ---

type HeroImageResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Order int    `json:"order"`
}

type HeroImagePatchRequest struct {
	URL   *string `json:"url,omitempty"`
	Alt   *string `json:"alt,omitempty"`
	Order *int    `json:"order,omitempty"`
}

type AddHeroImageRequest struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type SocialLinkResponse struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Enabled  bool   `json:"enabled"`
}

type SocialLinkPatchRequest struct {
	URL     *string `json:"url,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

type LegalPageResponse struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
}

type CookieConsentDTO struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	AcceptText  string `json:"acceptText"`
	DeclineText string `json:"declineText"`
}

type SectionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

type SetSectionEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

type SiteConfigResponse struct {
	HeroImages    []HeroImageResponse          `json:"heroImages"`
	SocialLinks   []SocialLinkResponse         `json:"socialLinks"`
	LegalPages    map[string]LegalPageResponse `json:"legalPages"`
	CookieConsent CookieConsentDTO             `json:"cookieConsent"`
	Sections      []SectionResponse            `json:"sections"`
	IsEditMode    bool                         `json:"isEditMode"`
	SavedAt       *string                      `json:"savedAt,omitempty"`
}

type EditModeResponse struct {
	IsEditMode bool `json:"isEditMode"`
}

func toSiteConfigResponse(cfg *domain.SiteConfig) SiteConfigResponse {
	resp := SiteConfigResponse{
		HeroImages:  make([]HeroImageResponse, 0, len(cfg.HeroImages)),
		SocialLinks: make([]SocialLinkResponse, 0, len(cfg.SocialLinks)),
		LegalPages:  make(map[string]LegalPageResponse, len(cfg.LegalPages)),
		Sections:    make([]SectionResponse, 0, len(cfg.Sections)),
		CookieConsent: CookieConsentDTO{
			Enabled:     cfg.CookieConsent.Enabled,
			Title:       cfg.CookieConsent.Title,
			Message:     cfg.CookieConsent.Message,
			AcceptText:  cfg.CookieConsent.AcceptText,
			DeclineText: cfg.CookieConsent.DeclineText,
		},
		IsEditMode: cfg.IsEditMode,
	}

	for _, img := range cfg.HeroImages {
		resp.HeroImages = append(resp.HeroImages, HeroImageResponse(img))
	}
	for _, link := range cfg.SocialLinks {
		resp.SocialLinks = append(resp.SocialLinks, SocialLinkResponse{
			ID:       link.ID,
			Platform: string(link.Platform),
			URL:      link.URL,
			Enabled:  link.Enabled,
		})
	}
	for key, page := range cfg.LegalPages {
		resp.LegalPages[key] = LegalPageResponse(page)
	}
	for _, section := range cfg.Sections {
		resp.Sections = append(resp.Sections, SectionResponse(section))
	}
	if cfg.SavedAt != nil {
		savedAt := cfg.SavedAt.UTC().Format(time.RFC3339)
		resp.SavedAt = &savedAt
	}
	return resp
}

// ErrorResponse - the standard error answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
