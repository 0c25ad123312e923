package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// FieldsError maps a json field path to its translated validation message.
type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{
		Fields: fields,
	}
}

func (f *FieldsError) Error() string {
	keys := lo.Keys(f.Fields)
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, f.Fields[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}
