package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *RenderError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *RenderError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

func InvalidComponentType(value string) *RenderError {
	return New(CategoryValidation, SeverityFatal, "invalid component type").
		WithContext("component_type", value)
}

// Render pipeline errors

func RenderFailed(page string, cause error) *RenderError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page render failed").
		WithContext("page", page)
}

func WriteFailed(path string, cause error) *RenderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}
