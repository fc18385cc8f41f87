// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/walteh/typograph/pkg/typograph"
)

// VersionInfo represents the version information of the binary
type VersionInfo struct {
	Version   string              `json:"version"`
	GoVersion string              `json:"go_version"`
	Platform  string              `json:"platform"`
	Revision  string              `json:"revision,omitempty"`
	Time      string              `json:"time,omitempty"`
	Modified  bool                `json:"modified,omitempty"`
	Rules     map[string][]string `json:"rules"`
}

// GetVersionInfo returns the version information from build info
func GetVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Rules: map[string][]string{
			typograph.English.Code(): typograph.EnglishPipeline(typograph.Faithful).RuleNames(),
			typograph.Russian.Code(): typograph.RussianPipeline(typograph.Faithful).RuleNames(),
		},
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if v := buildInfo.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Revision = setting.Value
			case "vcs.time":
				info.Time = setting.Value
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
	}

	return info
}

// FormatVersion returns a formatted string of version information
func FormatVersion() string {
	info := GetVersionInfo()
	modified := ""
	if info.Modified {
		modified = " (modified)"
	}
	return fmt.Sprintf(`🚀 typograph version info:
Version:   %s
Revision:  %s%s
Built:     %s
Go:        %s
Platform:  %s
Rules en:  %s
Rules ru:  %s
`, info.Version, info.Revision, modified, info.Time, info.GoVersion, info.Platform,
		strings.Join(info.Rules["en"], ", "), strings.Join(info.Rules["ru"], ", "))
}
