package models

import (
	"strconv"
	"strings"
	"time"
)

// FeaturedSlots is the fixed number of featured-resource slots on the home page.
const FeaturedSlots = 3

// SiteSettings is the singleton site configuration document.
//
// FeaturedResourceIDs always holds exactly FeaturedSlots entries after
// Normalize; a nil entry is an empty slot.
type SiteSettings struct {
	SiteTitle           BilingualText `json:"site_title"`
	ContactEmail        string        `json:"contact_email"`
	FooterText          BilingualText `json:"footer_text"`
	FeaturedResourceIDs []*string     `json:"featured_resource_ids"`
	Version             int64         `json:"version"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// DefaultSiteSettings returns the settings used before an admin saves any.
func DefaultSiteSettings() *SiteSettings {
	s := &SiteSettings{
		SiteTitle: BilingualText{
			En: "Al-Sa'd Scholarly Portal",
			Ar: "بوابة السعد العلمية",
		},
		FooterText: BilingualText{
			En: "© {year} Al-Sa'd Scholarly Portal. All rights reserved.",
			Ar: "© {year} بوابة السعد العلمية. جميع الحقوق محفوظة.",
		},
	}
	s.Normalize()
	return s
}

// Normalize pads or truncates the featured list to FeaturedSlots entries and
// turns blank ids into empty slots.
func (s *SiteSettings) Normalize() {
	featured := make([]*string, FeaturedSlots)
	for i := 0; i < FeaturedSlots && i < len(s.FeaturedResourceIDs); i++ {
		id := s.FeaturedResourceIDs[i]
		if id == nil || strings.TrimSpace(*id) == "" {
			continue
		}
		trimmed := strings.TrimSpace(*id)
		featured[i] = &trimmed
	}
	s.FeaturedResourceIDs = featured
}

// FeaturedIDs returns the filled slots in order.
func (s *SiteSettings) FeaturedIDs() []string {
	ids := make([]string, 0, len(s.FeaturedResourceIDs))
	for _, id := range s.FeaturedResourceIDs {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// RenderFooter substitutes {year} in the footer for lang. Arabic footers get
// Arabic-Indic digits.
func (s *SiteSettings) RenderFooter(lang Language, year int) string {
	digits := strconv.Itoa(year)
	if lang == LanguageArabic {
		digits = toArabicIndic(digits)
	}
	return strings.ReplaceAll(s.FooterText.In(lang), "{year}", digits)
}

func toArabicIndic(digits string) string {
	var b strings.Builder
	for _, r := range digits {
		if r >= '0' && r <= '9' {
			b.WriteRune('٠' + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SiteSettingsUpdate is a merge write: nil fields keep their stored value.
type SiteSettingsUpdate struct {
	SiteTitleEn         *string   `json:"site_title_en"`
	SiteTitleAr         *string   `json:"site_title_ar"`
	ContactEmail        *string   `json:"contact_email"`
	FooterTextEn        *string   `json:"footer_text_en"`
	FooterTextAr        *string   `json:"footer_text_ar"`
	FeaturedResourceIDs []*string `json:"featured_resource_ids"`
	Version             *int64    `json:"version"` // optional optimistic-concurrency check
}

// Merge applies u onto s.
func (s *SiteSettings) Merge(u *SiteSettingsUpdate) {
	if u.SiteTitleEn != nil {
		s.SiteTitle.En = strings.TrimSpace(*u.SiteTitleEn)
	}
	if u.SiteTitleAr != nil {
		s.SiteTitle.Ar = strings.TrimSpace(*u.SiteTitleAr)
	}
	if u.ContactEmail != nil {
		s.ContactEmail = strings.TrimSpace(*u.ContactEmail)
	}
	if u.FooterTextEn != nil {
		s.FooterText.En = *u.FooterTextEn
	}
	if u.FooterTextAr != nil {
		s.FooterText.Ar = *u.FooterTextAr
	}
	if u.FeaturedResourceIDs != nil {
		s.FeaturedResourceIDs = u.FeaturedResourceIDs
	}
	s.Normalize()
}
