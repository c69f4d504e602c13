package introspection

import "strings"

// suspectSuffix flags OBJECT types that look like operation roots by
// naming convention (Hasura names its roots query_root, mutation_root,
// subscription_root) but are not registered as one.
const suspectSuffix = "_root"

// reservedPrefix marks introspection machinery types such as __Schema.
const reservedPrefix = "__"

// RootTypes binds the schema's declared operation roots by name. An empty
// string means the schema does not declare that root.
type RootTypes struct {
	Query        string
	Mutation     string
	Subscription string

	// Suspects are object types that match the root naming convention
	// without being bound to any of the three roles. Purely advisory;
	// they never block an operation.
	Suspects []SuspectType
}

type SuspectType struct {
	Name       string
	FieldCount int
}

// IsRoot reports whether name is one of the declared operation roots.
func (r RootTypes) IsRoot(name string) bool {
	return name != "" && (name == r.Query || name == r.Mutation || name == r.Subscription)
}

// ClassifyRoots collects the declared operation root names and scans for
// root-like object types left unbound.
func ClassifyRoots(s *Schema) RootTypes {
	var roots RootTypes
	if s.QueryType != nil && s.QueryType.Name != nil {
		roots.Query = *s.QueryType.Name
	}
	if s.MutationType != nil && s.MutationType.Name != nil {
		roots.Mutation = *s.MutationType.Name
	}
	if s.SubscriptionType != nil && s.SubscriptionType.Name != nil {
		roots.Subscription = *s.SubscriptionType.Name
	}

	for _, typ := range s.Types {
		if typ.Kind != TypeKindObject || typ.Name == nil {
			continue
		}
		name := *typ.Name
		if !strings.HasSuffix(name, suspectSuffix) {
			continue
		}
		if roots.IsRoot(name) || strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		roots.Suspects = append(roots.Suspects, SuspectType{
			Name:       name,
			FieldCount: len(typ.Fields),
		})
	}

	return roots
}
