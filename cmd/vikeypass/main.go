// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command vikeypass is a local password vault: secrets live in one encrypted
// file, the master key lives in the OS credential store, and copied secrets
// are wiped from the clipboard after a short window.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/vikeypass/internal/app"
	"github.com/MKhiriev/vikeypass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCmd(buildInfo).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "vikeypass:", errorText(err))
		os.Exit(1)
	}
}

// errorText prefers the shared status text and falls back to the error
// itself for failures that have none, such as bad flags or config.
func errorText(err error) string {
	if msg := app.MessageFor(err); msg != app.MsgInternalError {
		return msg
	}
	return err.Error()
}
