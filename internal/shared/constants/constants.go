package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Roles carried in the identity token
	RoleAdmin  = "admin"
	RoleMember = "member"

	// Database table names
	TableContentFingerprints = "content_fingerprints"
	TableWatermarkIssuances  = "watermark_issuances"
	TableViolationRecords    = "violation_records"
	TableViolationCounters   = "violation_counters"
	TableConsentDocuments    = "consent_documents"
	TableConsentSignatures   = "consent_signatures"
	TableAccessLogs          = "access_logs"
)
