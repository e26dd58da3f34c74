package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/luoyiming/game-account-bot/internal/logger"
)

const signatureHeader = "X-Signature"

// withSignature verifies the OneBot callback signature: the transport sends
// "sha1=<hex>" where hex is HMAC-SHA1 over the raw body with the shared
// secret. Verification is skipped when no secret is configured.
func (h *Handler) withSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := strings.TrimPrefix(r.Header.Get(signatureHeader), "sha1=")

		mac := hmac.New(sha1.New, []byte(h.secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			log.Error().
				Str("signature", signature).
				Msg("callback signature mismatch")
			http.Error(w, "signature mismatch", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
