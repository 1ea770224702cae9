package assets

import (
	"slices"

	"github.com/samber/lo"
)

type fieldSetter func(a *Asset, value any) error

func stringSetter(field string, set func(a *Asset, v string)) fieldSetter {
	return func(a *Asset, value any) error {
		s, ok := value.(string)
		if !ok {
			return &InvalidFieldValueError{Field: field, Expected: "string"}
		}
		set(a, s)
		return nil
	}
}

// ignored accepts attributes that exist on an asset but are owned by the store.
func ignored(*Asset, any) error { return nil }

// patchableFields maps every attribute name a PATCH body may carry to its setter.
var patchableFields = map[string]fieldSetter{
	"name":        stringSetter("name", func(a *Asset, v string) { a.Name = v }),
	"description": stringSetter("description", func(a *Asset, v string) { a.Description = v }),
	"type":        stringSetter("type", func(a *Asset, v string) { a.Type = v }),
	"id":          ignored,
	"createdOn":   ignored,
	"updatedOn":   ignored,
}

// ApplyPatch merges fields onto a copy of current. Keys are checked before anything is set, so
// an unknown key or a badly typed value leaves the result untouched and current is never
// modified.
func ApplyPatch(current Asset, fields map[string]any) (Asset, error) {
	unknown := lo.Filter(lo.Keys(fields), func(k string, _ int) bool {
		_, ok := patchableFields[k]
		return !ok
	})
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return current, &InvalidFieldNameError{Names: unknown}
	}

	keys := lo.Keys(fields)
	slices.Sort(keys)

	merged := current
	for _, k := range keys {
		if err := patchableFields[k](&merged, fields[k]); err != nil {
			return current, err
		}
	}
	return merged, nil
}
