package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/snapshot"
)

// VersionInfo describes the running build and the formats it speaks
type VersionInfo struct {
	Version         string `json:"version"`
	GoVersion       string `json:"go_version"`
	BuildTime       string `json:"build_time,omitempty"`
	GitCommit       string `json:"git_commit,omitempty"`
	SnapshotVersion int    `json:"snapshot_version"`
	EventSchema     string `json:"event_schema"`
}

// Set with -ldflags "-X github.com/osse101/ArcFarmia_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

func HandleVersion() http.HandlerFunc {
	info := buildVersionInfo()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func buildVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:         Version,
		GoVersion:       runtime.Version(),
		BuildTime:       BuildTime,
		GitCommit:       GitCommit,
		SnapshotVersion: snapshot.CurrentVersion,
		EventSchema:     event.EventSchemaVersion,
	}
	if info.Version == "" || info.Version == "dev" {
		if v := os.Getenv("VERSION"); v != "" {
			info.Version = v
		}
	}
	if info.GitCommit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.GitCommit = s.Value
				}
			}
		}
	}
	return info
}
