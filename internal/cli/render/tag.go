package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/fatih/color"
)

// TagRenderer renders tag operation results
type TagRenderer struct {
	out io.Writer
}

// NewTagRenderer creates a new tag renderer
func NewTagRenderer(out io.Writer) *TagRenderer {
	return &TagRenderer{out: out}
}

// Render displays the tag operation result
func (r *TagRenderer) Render(result *usecase.TagDeploymentResult) error {
	if result == nil {
		return fmt.Errorf("no result to render")
	}
	deployment := result.Deployment

	switch result.Operation {
	case usecase.TagAdd:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Added tag '%s' to %s", result.Tag, deployment.ID)))
	case usecase.TagRemove:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed tag '%s' from %s", result.Tag, deployment.ID)))
	case usecase.TagShow:
	default:
		return fmt.Errorf("unknown operation: %s", result.Operation)
	}

	labelStyle := color.New(color.FgWhite, color.Bold)
	tagStyle := color.New(color.FgCyan)

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Deployment: %s\n", deployment.ID)
	labelStyle.Fprint(r.out, "Address: ")
	color.New(color.FgGreen, color.Bold).Fprintln(r.out, deployment.Address)

	labelStyle.Fprint(r.out, "Tags:    ")
	if len(result.CurrentTags) == 0 {
		color.New(color.Faint).Fprintln(r.out, "No tags")
		return nil
	}

	sorted := append([]string(nil), result.CurrentTags...)
	sort.Strings(sorted)
	for i, tag := range sorted {
		if i > 0 {
			fmt.Fprint(r.out, ", ")
		}
		tagStyle.Fprint(r.out, tag)
	}
	fmt.Fprintln(r.out)
	return nil
}
