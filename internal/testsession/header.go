package testsession

import (
	"runtime"
	"runtime/debug"
	"strings"
)

const (
	moduleName     = "pathkit"
	unknownVersion = "(devel)"
)

// headerDeps are the dependencies whose versions are named in the header.
//
//nolint:gochecknoglobals
var headerDeps = map[string]string{
	"golang.org/x/sys": "x/sys",
}

// Header returns the report header of the session, naming the versions of the
// libraries under test and, if configured, the temporary directory.
func (s *Session) Header() string {
	var sb strings.Builder

	sb.WriteString("libraries: ")
	sb.WriteString(strings.Join(libraryVersions(), ", "))

	if s.hasTempDir {
		sb.WriteString("\nbase tempdir: ")
		sb.WriteString(s.tempDir.String())
	}

	return sb.String()
}

func libraryVersions() []string {
	versions := []string{moduleName + "-" + unknownVersion}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			versions[0] = moduleName + "-" + info.Main.Version
		}

		for _, dep := range info.Deps {
			if name, ok := headerDeps[dep.Path]; ok {
				versions = append(versions, name+"-"+dep.Version)
			}
		}
	}

	return append(versions, "go-"+strings.TrimPrefix(runtime.Version(), "go"))
}
