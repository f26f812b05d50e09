package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/forumfuncionario/portal-service/pkg/errs"
)

// Password reset tokens are stateless: an HMAC over the account id, its
// current security stamp and an expiry. Rotating the stamp invalidates
// every outstanding token, which is what makes them single-use.

func resetTokenMAC(userID int64, securityStamp string, expiresAt int64, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s.%d", userID, securityStamp, expiresAt)
	return mac.Sum(nil)
}

func GeneratePasswordResetToken(userID int64, securityStamp string, secret string, ttl time.Duration) string {
	expiresAt := time.Now().Add(ttl).Unix()
	sig := resetTokenMAC(userID, securityStamp, expiresAt, secret)

	payload := fmt.Sprintf("%d.%s", expiresAt, base64.RawURLEncoding.EncodeToString(sig))
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

func VerifyPasswordResetToken(token string, userID int64, securityStamp string, secret string) error {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return errs.ErrInvalidResetToken
	}

	parts := strings.SplitN(string(decoded), ".", 2)
	if len(parts) != 2 {
		return errs.ErrInvalidResetToken
	}

	expiresAt, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return errs.ErrInvalidResetToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return errs.ErrInvalidResetToken
	}

	expected := resetTokenMAC(userID, securityStamp, expiresAt, secret)
	if !hmac.Equal(sig, expected) {
		return errs.ErrInvalidResetToken
	}

	if time.Now().Unix() > expiresAt {
		return errs.ErrExpiredResetToken
	}

	return nil
}
