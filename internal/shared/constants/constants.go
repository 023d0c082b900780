package constants

const (
	// HTTP headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys
	ContextKeyUserID    = "user_id"
	ContextKeyRole      = "role"
	ContextKeyRequestID = "request_id"

	// Table names
	TableMaintenanceRequests = "maintenance_requests"
	TableEquipment           = "equipment"
	TableUsers               = "users"
	TableTeams               = "teams"
	TableAuditLogs           = "audit_logs"
	TableNotifications       = "notifications"

	// Entity types recorded in audit logs and notification references
	EntityRequest   = "Request"
	EntityEquipment = "Equipment"

	// RelatedEntityMaintenanceRequest is the related-entity type carried by request notifications.
	RelatedEntityMaintenanceRequest = "MaintenanceRequest"
	RelatedEntityTeam               = "Team"
)
