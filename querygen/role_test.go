package querygen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		role     Role
		wantErr  bool
	}{
		{name: "query accepted on read path", document: "query { users { id } }", role: RoleQuery},
		{name: "anonymous selection accepted on read path", document: "{ users { id } }", role: RoleQuery},
		{name: "mutation rejected on read path", document: "mutation { insert_users(objects: []) { affected_rows } }", role: RoleQuery, wantErr: true},
		{name: "uppercase mutation rejected on read path", document: "MUTATION { x }", role: RoleQuery, wantErr: true},
		{name: "leading whitespace does not hide a mutation", document: "  \n\tmutation { x }", role: RoleQuery, wantErr: true},
		{name: "mutation accepted on mutation path", document: "mutation { insert_users(objects: []) { affected_rows } }", role: RoleMutation},
		{name: "mixed-case mutation accepted on mutation path", document: "Mutation Insert { x }", role: RoleMutation},
		{name: "query rejected on mutation path", document: "query { users { id } }", role: RoleMutation, wantErr: true},
		{name: "empty document rejected on mutation path", document: "", role: RoleMutation, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckRole(tt.document, tt.role)
			if tt.wantErr {
				require.Error(t, err)
				require.IsType(t, &ValidationError{}, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
