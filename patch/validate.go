package patch

import "fmt"

// ValidatePatchOperations rejects operations whose path is not a known field.
// An empty allow-list accepts everything.
func ValidatePatchOperations(ops []Operation, allowedPaths map[string]bool) error {
	if len(allowedPaths) == 0 {
		return nil
	}
	for i, op := range ops {
		if !allowedPaths[op.Path] {
			return fmt.Errorf("operation %d: path %q is not in the allowed paths set", i, op.Path)
		}
		switch op.Op {
		case OperationAdd, OperationRemove, OperationReplace:
		default:
			return fmt.Errorf("operation %d: unsupported op %q", i, op.Op)
		}
	}
	return nil
}
