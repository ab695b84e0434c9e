// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP verbs and paths under /tasks to
// TaskService calls and translates service errors into status codes and
// sanitized messages.
package api
