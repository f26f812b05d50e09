package utils

import (
	"testing"
	"time"

	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetToken_RoundTrip(t *testing.T) {
	token := GeneratePasswordResetToken(7, "stamp-a", "secret", time.Hour)

	require.NoError(t, VerifyPasswordResetToken(token, 7, "stamp-a", "secret"))
}

func TestPasswordResetToken_Expired(t *testing.T) {
	token := GeneratePasswordResetToken(7, "stamp-a", "secret", -time.Minute)

	assert.ErrorIs(t, VerifyPasswordResetToken(token, 7, "stamp-a", "secret"), errs.ErrExpiredResetToken)
}

func TestPasswordResetToken_StampRotationInvalidates(t *testing.T) {
	token := GeneratePasswordResetToken(7, "stamp-a", "secret", time.Hour)

	assert.ErrorIs(t, VerifyPasswordResetToken(token, 7, "stamp-b", "secret"), errs.ErrInvalidResetToken)
}

func TestPasswordResetToken_WrongUser(t *testing.T) {
	token := GeneratePasswordResetToken(7, "stamp-a", "secret", time.Hour)

	assert.ErrorIs(t, VerifyPasswordResetToken(token, 8, "stamp-a", "secret"), errs.ErrInvalidResetToken)
}

func TestPasswordResetToken_Garbage(t *testing.T) {
	assert.ErrorIs(t, VerifyPasswordResetToken("not-a-token", 7, "stamp-a", "secret"), errs.ErrInvalidResetToken)
	assert.ErrorIs(t, VerifyPasswordResetToken("", 7, "stamp-a", "secret"), errs.ErrInvalidResetToken)
}
