package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *IngestError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *IngestError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

// Git errors

func GitCloneError(repo string, cause error) *IngestError {
	return Wrap(cause, CategoryGit, SeverityFatal, "repository clone failed").
		WithContext("repository", repo)
}

func GitBranchError(branch string, cause error) *IngestError {
	return Wrap(cause, CategoryGit, SeverityFatal, "branch tree resolution failed").
		WithContext("branch", branch)
}

// Corpus errors

func EnumerationError(path string, cause error) *IngestError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "guide enumeration failed").
		WithContext("path", path)
}

func MetadataFallback(version string, cause error) *IngestError {
	return Wrap(cause, CategoryMetadata, SeverityWarning, "structured metadata unavailable").
		WithContext("version", version)
}

// Index errors

func IndexWriteError(url string, cause error) *IngestError {
	return Wrap(cause, CategoryIndex, SeverityError, "index write failed").
		WithContext("url", url)
}
