package memstore

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SiteConfigStore holds the editable site content. All mutation goes through
// its methods; consumers only ever see defensive copies.
type SiteConfigStore struct {
	mu  sync.Mutex
	cfg domain.SiteConfig

	// saving implements the single-flight guard around Save.
	saving    bool
	saveDelay time.Duration
}

// NewSiteConfigStore initializes the store from the defaults. saveDelay
// simulates the persistence round trip of the save action; tests pass 0.
func NewSiteConfigStore(saveDelay time.Duration) *SiteConfigStore {
	return &SiteConfigStore{
		cfg:       DefaultSiteConfig(),
		saveDelay: saveDelay,
	}
}

func (s *SiteConfigStore) Get(ctx context.Context) (*domain.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := copySiteConfig(s.cfg)
	return &cfg, nil
}

// ToggleEditMode flips edit mode for admins. For any other role it is a
// no-op: the guard lives here, not in the UI layer.
func (s *SiteConfigStore) ToggleEditMode(ctx context.Context, role domain.Role) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == domain.RoleAdmin {
		s.cfg.IsEditMode = !s.cfg.IsEditMode
	}
	return s.cfg.IsEditMode, nil
}

// UpdateHeroImage merges the patch into the entry with the given id.
// An unknown id changes nothing and is not an error.
func (s *SiteConfigStore) UpdateHeroImage(ctx context.Context, id string, patch domain.HeroImagePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cfg.HeroImages {
		if s.cfg.HeroImages[i].ID != id {
			continue
		}
		if patch.URL != nil {
			s.cfg.HeroImages[i].URL = *patch.URL
		}
		if patch.Alt != nil {
			s.cfg.HeroImages[i].Alt = *patch.Alt
		}
		if patch.Order != nil {
			s.cfg.HeroImages[i].Order = *patch.Order
		}
		return nil
	}
	return nil
}

// AddHeroImage appends a new entry with order = current max + 1.
// A blank or whitespace-only url is rejected.
func (s *SiteConfigStore) AddHeroImage(ctx context.Context, url, alt string) (*domain.HeroImage, error) {
	if strings.TrimSpace(url) == "" {
		return nil, domain.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maxOrder := 0
	for i := range s.cfg.HeroImages {
		if s.cfg.HeroImages[i].Order > maxOrder {
			maxOrder = s.cfg.HeroImages[i].Order
		}
	}

	img := domain.HeroImage{
		ID:    uuid.New().String(),
		URL:   url,
		Alt:   alt,
		Order: maxOrder + 1,
	}
	s.cfg.HeroImages = append(s.cfg.HeroImages, img)
	return &img, nil
}

func (s *SiteConfigStore) RemoveHeroImage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cfg.HeroImages {
		if s.cfg.HeroImages[i].ID == id {
			s.cfg.HeroImages = append(s.cfg.HeroImages[:i], s.cfg.HeroImages[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *SiteConfigStore) UpdateSocialLink(ctx context.Context, id string, patch domain.SocialLinkPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cfg.SocialLinks {
		if s.cfg.SocialLinks[i].ID != id {
			continue
		}
		if patch.URL != nil {
			s.cfg.SocialLinks[i].URL = *patch.URL
		}
		if patch.Enabled != nil {
			s.cfg.SocialLinks[i].Enabled = *patch.Enabled
		}
		return nil
	}
	return nil
}

func (s *SiteConfigStore) SetLegalPage(ctx context.Context, key string, page domain.LegalPage) error {
	switch key {
	case domain.LegalPrivacyPolicy, domain.LegalTermsOfService, domain.LegalCookies:
	default:
		return domain.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.LegalPages[key] = page
	return nil
}

func (s *SiteConfigStore) UpdateCookieConsent(ctx context.Context, consent domain.CookieConsent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.CookieConsent = consent
	return nil
}

// SetSectionEnabled toggles one homepage section. Order is untouched.
func (s *SiteConfigStore) SetSectionEnabled(ctx context.Context, id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cfg.Sections {
		if s.cfg.Sections[i].ID == id {
			s.cfg.Sections[i].Enabled = enabled
			return nil
		}
	}
	return nil
}

// Save simulates the persistence round trip. Single-flight: a save issued
// while one is pending fails with ErrSaveInProgress, matching the
// disabled-button convention of the editing UI.
func (s *SiteConfigStore) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return domain.ErrSaveInProgress
	}
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if s.saveDelay > 0 {
		select {
		case <-time.After(s.saveDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	now := time.Now().UTC()
	s.mu.Lock()
	s.cfg.SavedAt = &now
	s.mu.Unlock()
	return nil
}

func copySiteConfig(cfg domain.SiteConfig) domain.SiteConfig {
	out := cfg

	out.HeroImages = make([]domain.HeroImage, len(cfg.HeroImages))
	copy(out.HeroImages, cfg.HeroImages)

	out.SocialLinks = make([]domain.SocialLink, len(cfg.SocialLinks))
	copy(out.SocialLinks, cfg.SocialLinks)

	out.Sections = make([]domain.Section, len(cfg.Sections))
	copy(out.Sections, cfg.Sections)

	out.LegalPages = make(map[string]domain.LegalPage, len(cfg.LegalPages))
	for k, v := range cfg.LegalPages {
		out.LegalPages[k] = v
	}

	if cfg.SavedAt != nil {
		savedAt := *cfg.SavedAt
		out.SavedAt = &savedAt
	}
	return out
}

// DefaultSiteConfig is the content the site starts with.
func DefaultSiteConfig() domain.SiteConfig {
	return domain.SiteConfig{
		HeroImages: []domain.HeroImage{
			{ID: "hero-1", URL: "https://cdn.palaisrouge.ma/hero/medina.jpg", Alt: "Riad de la médina au coucher du soleil", Order: 1},
			{ID: "hero-2", URL: "https://cdn.palaisrouge.ma/hero/corniche.jpg", Alt: "Vue sur la corniche de Casablanca", Order: 2},
			{ID: "hero-3", URL: "https://cdn.palaisrouge.ma/hero/villa-piscine.jpg", Alt: "Villa contemporaine avec piscine", Order: 3},
		},
		SocialLinks: []domain.SocialLink{
			{ID: "sl-facebook", Platform: domain.PlatformFacebook, URL: "https://facebook.com/palaisrouge", Enabled: true},
			{ID: "sl-instagram", Platform: domain.PlatformInstagram, URL: "https://instagram.com/palaisrouge.immo", Enabled: true},
			{ID: "sl-linkedin", Platform: domain.PlatformLinkedIn, URL: "https://linkedin.com/company/palais-rouge", Enabled: false},
			{ID: "sl-youtube", Platform: domain.PlatformYouTube, URL: "", Enabled: false},
		},
		LegalPages: map[string]domain.LegalPage{
			domain.LegalPrivacyPolicy:  {Enabled: true, Title: "Politique de confidentialité"},
			domain.LegalTermsOfService: {Enabled: true, Title: "Conditions générales d'utilisation"},
			domain.LegalCookies:        {Enabled: true, Title: "Politique de cookies"},
		},
		CookieConsent: domain.CookieConsent{
			Enabled:     true,
			Title:       "Nous respectons votre vie privée",
			Message:     "Ce site utilise des cookies pour améliorer votre expérience de navigation.",
			AcceptText:  "Accepter",
			DeclineText: "Refuser",
		},
		Sections: []domain.Section{
			{ID: "sec-hero", Name: "Hero", Enabled: true, Order: 1},
			{ID: "sec-featured", Name: "Biens en vedette", Enabled: true, Order: 2},
			{ID: "sec-services", Name: "Nos services", Enabled: true, Order: 3},
			{ID: "sec-testimonials", Name: "Témoignages", Enabled: false, Order: 4},
			{ID: "sec-contact", Name: "Contact", Enabled: true, Order: 5},
		},
	}
}
