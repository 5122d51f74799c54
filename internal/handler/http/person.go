package http

import (
	"github.com/krazykeith/apistarter/internal/mapper"
)

// personBase binds the request invoker and the person mapper together.
// Versioned person handlers embed it and may shape responses only through
// these two collaborators; no response-writing primitive is exposed, so a
// handler cannot bypass the invoker's failure classification.
//
// Versions are independent: v1 and v2 handlers for the same resource may
// diverge completely in payload shape and security requirements. The router
// selects the version at registration time via the path prefix.
type personBase struct {
	invoker *Invoker
	mapper  *mapper.PersonMapper
}
