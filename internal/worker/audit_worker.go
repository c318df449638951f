package worker

import (
	"github.com/spec-kit/warrior-admin-console/internal/service"
)

// StartAuditWorker registers audit-log handlers on the dispatcher.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
