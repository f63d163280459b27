package api_context

import "context"

type ctxKey string

const (
	AssetIDKey   ctxKey = "assetID"
	RequestIDKey ctxKey = "requestID"
	AuthUserKey  ctxKey = "authUser"
	AuthRolesKey ctxKey = "authRoles"
)

func AssetIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AssetIDKey).(string)
	return id, ok
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	rid, ok := ctx.Value(RequestIDKey).(string)
	return rid, ok
}

func AuthUserFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthUserKey).(string)
	return sub, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
