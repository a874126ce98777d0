// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bathtub-manager/internal/bathtub"
	"strings"

	"github.com/spf13/cobra"
)

// completeUpdateArgs completes the field name of --update <id> <field> <value>.
func completeUpdateArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	update, _ := cmd.Flags().GetBool("update")
	if !update || len(args) != 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, f := range bathtub.EditableFields() {
		if strings.HasPrefix(f.Name, toComplete) {
			completions = append(completions, f.Name+"\t"+f.Description)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
