package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

// Color styles for table format
var (
	nsHeader        = color.New(color.BgYellow, color.FgBlack)
	nsHeaderBold    = color.New(color.BgYellow, color.FgBlack, color.Bold)
	chainHeader     = color.New(color.BgCyan, color.FgBlack)
	chainHeaderBold = color.New(color.BgCyan, color.FgBlack, color.Bold)
	nameStyle       = color.New(color.FgYellow, color.Bold)
	addressStyle    = color.New(color.FgWhite)
	timestampStyle  = color.New(color.Faint)
	tagsStyle       = color.New(color.FgCyan)
	registeredStyle = color.New(color.FgMagenta)
)

// DeploymentsRenderer renders deployment lists grouped by namespace and chain
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders one table per namespace and chain
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	byNamespace := lo.GroupBy(result.Deployments, func(d *models.Deployment) string { return d.Namespace })
	namespaces := lo.Keys(byNamespace)
	sort.Strings(namespaces)

	for _, ns := range namespaces {
		nsLabel := fmt.Sprintf("%-12s", "namespace:")
		nsValue := fmt.Sprintf("%-30s", strings.ToUpper(ns))
		fmt.Fprintln(r.out, nsHeader.Sprintf("   ◎ %s %s", nsLabel, nsHeaderBold.Sprint(nsValue)))

		byChain := lo.GroupBy(byNamespace[ns], func(d *models.Deployment) uint64 { return d.ChainID })
		chainIDs := lo.Keys(byChain)
		sort.Slice(chainIDs, func(i, j int) bool { return chainIDs[i] < chainIDs[j] })

		for i, chainID := range chainIDs {
			treePrefix, continuation := "├─", "│ "
			if i == len(chainIDs)-1 {
				treePrefix, continuation = "└─", "  "
			}

			chainLabel := fmt.Sprintf("%-12s", "chain:")
			chainValue := fmt.Sprintf("%-30d", chainID)
			fmt.Fprintf(r.out, "%s%s%s\n", treePrefix, chainHeader.Sprintf(" ⛓ %s ", chainLabel), chainHeaderBold.Sprint(chainValue))
			fmt.Fprintln(r.out, continuation)

			tw := buildDeploymentTable(byChain[chainID])
			for _, line := range strings.Split(tw.Render(), "\n") {
				fmt.Fprintf(r.out, "%s  %s\n", continuation, line)
			}
			fmt.Fprintln(r.out, continuation)
		}
	}

	fmt.Fprintf(r.out, "Total: %d deployment(s)\n", result.Summary.Total)
	return nil
}

func buildDeploymentTable(deployments []*models.Deployment) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Format.Header = text.FormatDefault

	for _, dep := range deployments {
		source := ""
		if dep.Source == models.SourceRegistered {
			source = registeredStyle.Sprint("registered")
		}

		tags := ""
		if len(dep.Tags) > 0 {
			tags = tagsStyle.Sprintf("(%s)", strings.Join(dep.Tags, ", "))
		}

		tw.AppendRow(table.Row{
			nameStyle.Sprint(dep.ContractName),
			addressStyle.Sprint(dep.Address),
			source,
			tags,
			timestampStyle.Sprint(dep.CreatedAt.Format("2006-01-02 15:04:05")),
		})
	}

	return tw
}
