package auth

import (
	"testing"

	"backoffice-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	sess := NewSession()

	assert.Equal(t, models.RoleNone, sess.CurrentRole())
	assert.Nil(t, sess.CurrentUser())

	sess.SetUser(&models.Account{ID: "1", Name: "Admin User", Role: models.RoleAdmin})
	assert.Equal(t, models.RoleAdmin, sess.CurrentRole())

	user := sess.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Admin User", user.Name)

	sess.Clear()
	assert.Equal(t, models.RoleNone, sess.CurrentRole())
	assert.Nil(t, sess.CurrentUser())

	// Clear idempotent
	sess.Clear()
	assert.Equal(t, models.RoleNone, sess.CurrentRole())
}

func TestSessionCurrentUserReturnsCopy(t *testing.T) {
	sess := NewSession()
	sess.SetUser(&models.Account{ID: "2", Name: "Staff User", Role: models.RoleStaff})

	u := sess.CurrentUser()
	u.Role = models.RoleAdmin

	assert.Equal(t, models.RoleStaff, sess.CurrentRole(), "kopya üzerinden oturum değiştirilememeli")
}

func TestFailedLoginLeavesSessionEmpty(t *testing.T) {
	dir := NewDirectory()
	sess := NewSession()

	_, err := dir.Authenticate("admin@restaurant.com", "wrong")
	assert.Error(t, err)
	assert.Equal(t, models.RoleNone, sess.CurrentRole())
}
