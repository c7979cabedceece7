// Package git provides read access to the quarkus.io repository: cloning or
// opening the working copy, resolving a branch's tree snapshot once, and
// lazily streaming blobs out of that snapshot.
//
// This package handles Git operations including:
//   - Repository cloning with authentication (SSH, token, basic)
//   - Branch tree resolution preferring remote-tracking refs
//   - Lazy blob input providers with typed NotFound errors
//
// Blob reads are deferred until a consumer opens the provider, so binding a
// content path during enumeration never touches the object store.
package git
