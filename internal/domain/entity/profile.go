package entity

import (
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Profile groups a named set of permissions shared by many accounts.
type Profile struct {
	ID          uuid.UUID
	Name        string
	Slug        string // Lowercase-hyphenated form of Name, recomputed on every save.
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Rename sets the profile name and re-derives its slug.
func (p *Profile) Rename(name string) {
	p.Name = name
	p.Slug = Slugify(name)
}

// SetPermissions replaces the permission set, dropping duplicates and empty entries.
func (p *Profile) SetPermissions(permissions []string) {
	set := make([]string, 0, len(permissions))
	for _, perm := range permissions {
		perm = strings.TrimSpace(perm)
		if perm == "" || slices.Contains(set, perm) {
			continue
		}
		set = append(set, perm)
	}
	p.Permissions = set
}

// Slugify returns the URL-safe slug for name: accents stripped, lowercased,
// and every run of characters other than letters and digits collapsed into a single hyphen.
func Slugify(name string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingHyphen := false
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)

			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
