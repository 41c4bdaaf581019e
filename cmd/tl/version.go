package main

import "fmt"

var buildCommitID = "unknown"
var buildDate = "unknown"

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func versionString() string {
	return fmt.Sprintf("commit_id %s\nbuild_date %s", buildCommitID, buildDate)
}
