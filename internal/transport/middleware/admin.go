package middleware

import (
	"context"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden unless the context token
// carries the admin role. Use inside handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.RoleFromCtx(ctx) != domain.RoleAdmin.String() {
		return domain.ErrForbidden
	}
	return nil
}
