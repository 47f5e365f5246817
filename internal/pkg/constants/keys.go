package constants

const (
	ViperKeyEnv           = "env"
	ViperKeyListenAddr    = "listen_addr"
	ViperKeyDatabaseDSN   = "database_dsn"
	ViperKeyRedisAddr     = "redis_addr"
	ViperKeyRedisPassword = "redis_password"
	ViperKeyMenuCacheTTL  = "menu_cache_ttl"
	ViperKeyCORSOrigins   = "cors_origins"
	ViperSecretKey        = "auth_secret"
)

const (
	CookieKeyAuthToken = "auth_token"

	// echo context keys set by AuthMiddleware.
	CtxKeyUserID   = "user_id"
	CtxKeyUserRole = "user_role"
)

// Roles are client-asserted only. The mobile app's login screen is a mock role
// switch, so nothing here is an authorization boundary.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)
