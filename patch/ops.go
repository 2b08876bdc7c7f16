package patch

import (
	"slices"
	"strings"

	"github.com/tbxark/lessonflow/types"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func Pointer(field types.Field) string {
	return "/" + pointerEscaper.Replace(string(field))
}

// WriteOps turns binding values into add operations, ordered by field name.
func WriteOps(values map[types.Field]string) []Operation {
	fields := make([]types.Field, 0, len(values))
	for f := range values {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	ops := make([]Operation, 0, len(fields))
	for _, f := range fields {
		ops = append(ops, Operation{Op: OperationAdd, Path: Pointer(f), Value: values[f]})
	}
	return ops
}

// RollbackOps is the inverse of WriteOps for the same fields.
func RollbackOps(fields []types.Field) []Operation {
	ops := make([]Operation, 0, len(fields))
	for _, f := range fields {
		ops = append(ops, Operation{Op: OperationRemove, Path: Pointer(f)})
	}
	return ops
}
