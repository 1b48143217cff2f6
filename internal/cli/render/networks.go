package render

import (
	"fmt"
	"io"

	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	activeStyle = color.New(color.FgGreen, color.Bold)
	errorStyle  = color.New(color.FgRed)
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders one row per foundry.toml endpoint with its chain
// ID and how many deployments the registry holds there
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in foundry.toml [rpc_endpoints]")
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Format.Header = text.FormatUpper
	tw.AppendHeader(table.Row{"", "Network", "Chain ID", "Deployments"})

	for _, network := range result.Networks {
		marker := ""
		if network.Active {
			marker = activeStyle.Sprint("*")
		}

		if network.Error != nil {
			tw.AppendRow(table.Row{marker, network.Name, errorStyle.Sprint("error"), errorStyle.Sprint(network.Error)})
			continue
		}
		tw.AppendRow(table.Row{marker, network.Name, network.ChainID, network.Deployments})
	}

	fmt.Fprintln(r.out, tw.Render())
	fmt.Fprintf(r.out, "\nDeployments counted in namespace %s\n", result.Namespace)
	return nil
}
