package patch

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyRFC6902 applies ops to the JSON form of current. Removing a missing
// field is dropped instead of failing, so rollbacks are idempotent.
func ApplyRFC6902[T any](current T, ops []Operation) (T, error) {
	var zero T
	if len(ops) == 0 {
		return current, nil
	}
	currentJSON, err := sonic.Marshal(current)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal current state: %w", err)
	}
	ops = FixOperation(currentJSON, ops)
	if len(ops) == 0 {
		return current, nil
	}
	patchJSON, err := sonic.Marshal(ops)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal patch operations: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return zero, fmt.Errorf("failed to decode patch: %w", err)
	}
	modifiedJSON, err := patch.Apply(currentJSON)
	if err != nil {
		return zero, fmt.Errorf("failed to apply patch: %w", err)
	}
	var result T
	if err := sonic.Unmarshal(modifiedJSON, &result); err != nil {
		return zero, fmt.Errorf("decode patched state: %w", err)
	}
	return result, nil
}

// FixOperation drops remove operations on fields the document does not hold.
func FixOperation(currentJSON []byte, ops []Operation) []Operation {
	var doc map[string]any
	if err := sonic.Unmarshal(currentJSON, &doc); err != nil {
		return ops
	}
	fixed := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if op.Op == OperationRemove && !hasField(doc, op.Path) {
			continue
		}
		fixed = append(fixed, op)
	}
	return fixed
}

// hasField reports whether the top-level member named by a single-token
// pointer exists.
func hasField(doc map[string]any, path string) bool {
	token, ok := strings.CutPrefix(path, "/")
	if !ok || strings.Contains(token, "/") {
		return false
	}
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	_, ok = doc[token]
	return ok
}
