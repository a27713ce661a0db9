//go:build !unix

package engine

import "os/exec"

func isolate(*exec.Cmd) {}

func maxRSS(*exec.Cmd) int64 { return 0 }
