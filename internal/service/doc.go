// Package service contains the application use cases for task tracking.
//
// TaskService sits between the HTTP handlers and the task store. It enforces
// field presence on incoming task data, logs state changes, and translates
// store errors into the service sentinels the API layer understands. It
// depends only on the store interfaces, never on a concrete implementation.
package service
