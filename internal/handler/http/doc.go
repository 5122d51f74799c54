// Package http implements the HTTP transport layer of the application:
// chi route registration, the versioned person handlers, the request invoker
// that translates handler outcomes into HTTP responses, and the middleware
// stack (authentication, request context, tracing, logging, compression).
//
// Handlers never write responses themselves. Every endpoint runs inside
// [Invoker.Invoke], which is the single point translating the classified
// failure taxonomy of internal/apperr into status codes and payloads.
package http
