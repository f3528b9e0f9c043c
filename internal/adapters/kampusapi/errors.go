package kampusapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	apperrors "github.com/kampus/admin-console/internal/errors"
)

// detailExpressions locate the human-readable message in an API error body,
// tried in order. FastAPI sends either {"detail": "..."} or a list of
// validation items under detail.
var detailExpressions = []string{
	"detail[0].msg",
	"detail",
	"message",
	"error",
}

// Default messages when the API body carries none.
const (
	msgUnauthorized = "Oturumunuzun süresi doldu. Lütfen tekrar giriş yapın."
	msgForbidden    = "Bu işlem için yetkiniz yok."
	msgNotFound     = "Kayıt bulunamadı."
	msgServer       = "Sunucu hatası oluştu."
)

// extractDetail returns the first non-empty string matched by detailExpressions.
func extractDetail(body []byte) string {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	for _, expr := range detailExpressions {
		v, err := jmespath.Search(expr, doc)
		if err != nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// decodeError maps a non-2xx response onto the application error taxonomy.
// A body that cannot be read falls back to the default message for the status.
func (c *Client) decodeError(ctx context.Context, resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		c.logger.DebugContext(ctx, "read api error body", "status", resp.StatusCode, "error", err)
	}
	detail := extractDetail(body)

	pick := func(fallback string) string {
		if detail != "" {
			return detail
		}
		return fallback
	}

	var code apperrors.ErrorCode
	var msg string
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		code, msg = apperrors.ErrCodeUnauthorized, pick(msgUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		code, msg = apperrors.ErrCodeForbidden, pick(msgForbidden)
	case resp.StatusCode == http.StatusNotFound:
		code, msg = apperrors.ErrCodeNotFound, pick(msgNotFound)
	case resp.StatusCode == http.StatusConflict:
		code, msg = apperrors.ErrCodeConflict, pick(http.StatusText(resp.StatusCode))
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusGatewayTimeout:
		code, msg = apperrors.ErrCodeTimeout, pick("İstek zaman aşımına uğradı. Lütfen tekrar deneyin.")
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		code, msg = apperrors.ErrCodeValidation, pick(http.StatusText(resp.StatusCode))
	default:
		code, msg = apperrors.ErrCodeInternal, msgServer
	}

	cause := fmt.Errorf("api status %d", resp.StatusCode)
	if resp.Request != nil && resp.Request.URL != nil {
		cause = fmt.Errorf("api %s %s: status %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode)
	}

	return &apperrors.AppError{
		Code:    code,
		Message: msg,
		Status:  resp.StatusCode,
		Cause:   cause,
	}
}
