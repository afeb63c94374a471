package utils

import "context"

type contextKey string

const (
	AccessCodeKey contextKey = "access_code"
	RoleKey       contextKey = "role"
)

// Roles carried in the request context. Exactly two codes are
// reserved; everything else resolves to RoleGuest.
const (
	RoleAdmin = "admin"
	RoleUsher = "usher"
	RoleGuest = "guest"
)

func SetAccessContext(ctx context.Context, code, role string) context.Context {
	ctx = context.WithValue(ctx, AccessCodeKey, code)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetAccessCodeFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(AccessCodeKey)
	if val == nil {
		return "", false
	}

	code, ok := val.(string)
	return code, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RoleKey)
	if val == nil {
		return "", false
	}

	role, ok := val.(string)
	return role, ok
}
