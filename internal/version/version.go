package version

import "blog/internal/platform/logger"

// Set at build time with -ldflags "-X blog/internal/version.Version=...".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func Get() string {
	return Version
}

type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
}

func (b BuildInfo) LogFields() []logger.Field {
	return []logger.Field{
		logger.String("version", b.Version),
		logger.String("build_time", b.BuildTime),
		logger.String("git_commit", b.GitCommit),
	}
}
