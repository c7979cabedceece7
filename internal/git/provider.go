package git

import (
	"errors"
	"io"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// InputProvider is a value object binding a (tree snapshot, path) pair.
// Construction performs no IO; the blob lookup and read happen in Open, and
// a path absent from the snapshot surfaces there as *NotFoundError.
type InputProvider struct {
	tree *object.Tree
	path string
}

// NewInputProvider binds path inside the given tree snapshot.
func NewInputProvider(tree *object.Tree, path string) *InputProvider {
	return &InputProvider{tree: tree, path: path}
}

// Path returns the bound in-tree path.
func (p *InputProvider) Path() string { return p.path }

// Open resolves the blob and returns its content stream.
func (p *InputProvider) Open() (io.ReadCloser, error) {
	file, err := p.tree.File(p.path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, &NotFoundError{Path: p.path, Err: err}
		}
		return nil, err
	}
	return file.Reader()
}
