package ctxutil

import "context"

type ctxKey string

const (
	warehouseIDKey ctxKey = "warehouse_id"
	roleKey        ctxKey = "role"
	requestIDKey   ctxKey = "request_id"
)

// WithWarehouseID stores the warehouse ID in the context.
func WithWarehouseID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, warehouseIDKey, id)
}

// WarehouseIDFromCtx extracts the warehouse ID from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func WarehouseIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(warehouseIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithRole stores the token holder's role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the role from the context. Returns "" if absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
