// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/creatorstack/access-service/cmd"

func main() {
	cmd.Execute()
}
