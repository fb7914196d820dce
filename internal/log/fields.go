// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID = "request_id"
	FieldJobID     = "job_id"

	// Process / pipeline fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Export fields
	FieldScene  = "scene"
	FieldOutput = "output"
	FieldFrame  = "frame"
	FieldObject = "object"
	FieldFaces  = "faces"

	// Path fields
	FieldPath = "path"
)
