// Package store defines interfaces for task storage. The interfaces keep the
// service layer independent of how and where records are held; the only
// implementation today lives in internal/platform/memory.
package store
