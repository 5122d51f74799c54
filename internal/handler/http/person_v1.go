package http

import (
	"context"
	"net/http"
)

// personV1 serves the first-generation person endpoints.
type personV1 struct {
	personBase
}

func newPersonV1(base personBase) *personV1 {
	return &personV1{personBase: base}
}

// securityTest is an authenticated probe. Reaching the producer at all means
// the bearer token was accepted, so it only ever reports true.
func (p *personV1) securityTest(w http.ResponseWriter, r *http.Request) {
	p.invoker.Invoke(w, r, func(ctx context.Context) (any, error) {
		return true, nil
	})
}
