// Package domain contains the core business entities of the task tracker,
// independent of any storage or delivery mechanism.
//
// A Task is identified by a numeric ID that only a store may assign. Callers
// describe the rest of a task through TaskFields, which is the input for both
// creation and full replacement.
package domain
