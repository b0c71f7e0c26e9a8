package domain

import "time"

// SocialPlatform - the fixed set of supported social networks.
type SocialPlatform string

const (
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformYouTube   SocialPlatform = "youtube"
)

// HeroImage - one entry of the homepage hero carousel.
// Order values are unique within the collection and define display sequence.
type HeroImage struct {
	ID    string
	URL   string
	Alt   string
	Order int
}

// HeroImagePatch - partial update for a hero image. Nil fields stay untouched;
// Order is only changed when explicitly included.
type HeroImagePatch struct {
	URL   *string
	Alt   *string
	Order *int
}

// SocialLink - one footer social link.
type SocialLink struct {
	ID       string
	Platform SocialPlatform
	URL      string
	Enabled  bool
}

// SocialLinkPatch - partial update for a social link.
type SocialLinkPatch struct {
	URL     *string
	Enabled *bool
}

// LegalPage keys within SiteConfig.LegalPages.
const (
	LegalPrivacyPolicy  = "privacyPolicy"
	LegalTermsOfService = "termsOfService"
	LegalCookies        = "cookies"
)

// LegalPage - toggle and title of one legal page.
type LegalPage struct {
	Enabled bool
	Title   string
}

// CookieConsent - the cookie banner copy and toggle.
type CookieConsent struct {
	Enabled     bool
	Title       string
	Message     string
	AcceptText  string
	DeclineText string
}

// Section - one toggleable homepage section descriptor.
// Toggling Enabled never changes Order.
type Section struct {
	ID      string
	Name    string
	Enabled bool
	Order   int
}

// SiteConfig is the editable marketing-site content.
type SiteConfig struct {
	HeroImages    []HeroImage
	SocialLinks   []SocialLink
	LegalPages    map[string]LegalPage
	CookieConsent CookieConsent
	Sections      []Section

	// IsEditMode gates the in-place editing UI; only admins may toggle it.
	IsEditMode bool

	// SavedAt is the transient "saved" marker set by the last successful save.
	SavedAt *time.Time
}
