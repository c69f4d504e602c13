package introspection

// TypeNameField is the synthetic selection used when a type exposes no
// scalar or enum field at all; a selection set may not be empty.
const TypeNameField = "__typename"

// ProjectableFields filters a type's fields down to the ones that are safe
// to select without building nested selection sets: fields whose resolved
// type is a scalar or an enum, including lists of them. Field order is
// preserved. A type with no such field projects to the single synthetic
// __typename selection.
func ProjectableFields(typ *FullType) ([]string, error) {
	fields := make([]string, 0, len(typ.Fields))
	for _, field := range typ.Fields {
		resolved, err := ResolveRef(&field.Type)
		if err != nil {
			return nil, err
		}
		if resolved.Kind == TypeKindScalar || resolved.Kind == TypeKindEnum {
			fields = append(fields, field.Name)
		}
	}

	if len(fields) == 0 {
		return []string{TypeNameField}, nil
	}

	return fields, nil
}
