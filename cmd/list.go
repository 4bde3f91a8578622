package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/webshell-dev/webshell/internal/apps"
	"github.com/webshell-dev/webshell/pkg/util"
)

type appInfo struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Bindings []string `json:"bindings"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the apps webshell can host",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringP("output", "o", "", "Output format (json)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	infos := lo.Map(apps.All(), func(a apps.App, _ int) appInfo {
		return appInfo{Name: a.Name, Title: a.Title, Bindings: a.BindingNames()}
	})

	if output == "json" {
		return util.PrintPrettyJSON(cmd.OutOrStdout(), infos)
	}

	data := pterm.TableData{{"Name", "Title", "Bindings"}}
	for _, info := range infos {
		data = append(data, []string{info.Name, util.OrDash(info.Title), util.JoinOrDash(info.Bindings...)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(cmd.OutOrStdout()).Render()
}
