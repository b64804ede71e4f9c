package authz

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseRolesYAML decodes role definitions from a YAML document of the form:
//
//	roles:
//	  - name: viewer
//	    permissions: ["content:read"]
//	  - name: editor
//	    permissions: ["content:write"]
//	    inherits: [viewer]
//
// Roles without a name are rejected; everything else is passed through
// untouched, including unknown inherits targets (resolved lazily by the
// engine).
func ParseRolesYAML(data []byte) ([]Role, error) {
	var doc struct {
		Roles []Role `yaml:"roles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParsingRoles, err)
	}

	for i, r := range doc.Roles {
		if r.Name == "" {
			return nil, errors.Join(ErrParsingRoles, fmt.Errorf("role at index %d has no name", i))
		}
	}

	return doc.Roles, nil
}

// fileRoleSource reads role definitions from a YAML file on each Load.
type fileRoleSource struct {
	path string
}

// NewFileRoleSource creates a RoleSource backed by a YAML file. The file
// is read on Load, so re-loading picks up edits without restarting.
func NewFileRoleSource(path string) RoleSource {
	return &fileRoleSource{path: path}
}

// Load reads and parses the role file.
func (s *fileRoleSource) Load(ctx context.Context) ([]Role, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrLoadingRoles, err)
	}
	return ParseRolesYAML(data)
}
