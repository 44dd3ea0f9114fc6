package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "professor", want: "professor"},
		{name: "Professor", want: "professor"},
		{name: "Head Professor", want: "head-professor"},
		{name: "  Head   of  Dept. ", want: "head-of-dept"},
		{name: "Coordenação Acadêmica", want: "coordenacao-academica"},
		{name: "level_2/admin", want: "level-2-admin"},
		{name: "---", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}

func TestProfile_RenameRederivesSlug(t *testing.T) {
	p := &Profile{}
	p.Rename("Professor")
	assert.Equal(t, "Professor", p.Name)
	assert.Equal(t, "professor", p.Slug)

	p.Rename("Substitute Professor")
	assert.Equal(t, "substitute-professor", p.Slug)
}

func TestProfile_SetPermissionsDeduplicates(t *testing.T) {
	p := &Profile{}
	p.SetPermissions([]string{"changeGrades", " changeGrades", "", "changeUser"})
	assert.Equal(t, []string{"changeGrades", "changeUser"}, p.Permissions)
}

func TestAccount_Can(t *testing.T) {
	professor := &Profile{Name: "professor", Permissions: []string{"changeGrades"}}

	var nilAccount *Account
	assert.False(t, nilAccount.Can("changeGrades"))
	assert.False(t, (&Account{}).Can("changeGrades"))

	account := &Account{Profile: professor}
	assert.True(t, account.Can("changeGrades"))
	assert.False(t, account.Can("other"))
	assert.False(t, account.Can("changegrades"))
	assert.False(t, account.Can("change"))
}

func TestSessionToken_IsExpired(t *testing.T) {
	issued := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	token := &SessionToken{ExpiresAt: issued.Add(SessionTTL)}

	assert.False(t, token.IsExpired(issued))
	assert.False(t, token.IsExpired(issued.Add(SessionTTL-time.Millisecond)))
	assert.True(t, token.IsExpired(issued.Add(SessionTTL)))
}

func TestSessionToken_Lifetime(t *testing.T) {
	issued := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, SessionTTL, (&SessionToken{IssuedAt: issued, ExpiresAt: issued.Add(SessionTTL)}).Lifetime())
	assert.Zero(t, (&SessionToken{ExpiresAt: issued.Add(SessionTTL)}).Lifetime())
}
