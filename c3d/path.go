package c3d

import (
	"strings"

	"github.com/pkg/errors"
)

// ParamSeparator separates group and parameter names in a path.
const ParamSeparator = ":"

// ParseParamPath splits a "GROUP:NAME" path.
//
// Examples:
//   - "POINT:LABELS" -> group="POINT", name="LABELS"
//   - "analog:scale" -> group="analog", name="scale"
func ParseParamPath(path string) (group, name string, err error) {
	if path == "" {
		return "", "", errors.Wrap(ErrInvalidPath, "empty path")
	}

	idx := strings.Index(path, ParamSeparator)
	if idx == -1 {
		return "", "", errors.Wrapf(ErrInvalidPath, "missing %q separator: %s", ParamSeparator, path)
	}

	group = path[:idx]
	name = path[idx+1:]
	if group == "" || name == "" {
		return "", "", errors.Wrapf(ErrInvalidPath, "empty component: %s", path)
	}
	return group, name, nil
}

// JoinParamPath builds a "GROUP:NAME" path.
func JoinParamPath(group, name string) string {
	return group + ParamSeparator + name
}
