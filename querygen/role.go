package querygen

import "strings"

// Role declares what kind of operation a caller-supplied document is
// meant to be.
type Role int

const (
	RoleQuery Role = iota
	RoleMutation
)

const mutationKeyword = "mutation"

// CheckRole verifies a passthrough document against its intended role: a
// read-only document must not start with the mutation keyword, a mutation
// document must. The check is case-insensitive and ignores leading
// whitespace. Violations are validation errors, never silent coercion.
func CheckRole(document string, role Role) error {
	trimmed := strings.TrimSpace(document)
	isMutation := len(trimmed) >= len(mutationKeyword) &&
		strings.EqualFold(trimmed[:len(mutationKeyword)], mutationKeyword)

	switch role {
	case RoleMutation:
		if !isMutation {
			return validationErrorf("expected a mutation document, use the query operation for reads")
		}
	default:
		if isMutation {
			return validationErrorf("mutation documents are not allowed here, use the mutation operation")
		}
	}

	return nil
}
