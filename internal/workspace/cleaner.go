// Where: internal/workspace/cleaner.go
// What: Concrete cleaner adapter.
// Why: Satisfy the app's Cleaner interface with the real filesystem ops.
package workspace

// DirCleaner performs the real clean operation.
type DirCleaner struct{}

// Clean implements the app-level Cleaner interface.
func (DirCleaner) Clean(root string) (CleanResult, error) {
	return Clean(root)
}
