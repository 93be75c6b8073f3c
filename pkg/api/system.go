package api

// SystemInfoResponse — конфигурация системы, отдаваемая любому
// аутентифицированному вызывающему. SecretKey — тот же секрет, что вшит в
// подпись токенов: утечка этого ответа равна возможности ковать токены.
type SystemInfoResponse struct {
	Server     string   `json:"server"`
	Database   string   `json:"database"`
	UsersCount int      `json:"users_count"`
	AdminUsers []string `json:"admin_users"`
	SecretKey  string   `json:"secret_key"`
	LastBackup string   `json:"last_backup"`
	DebugMode  bool     `json:"debug_mode"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
