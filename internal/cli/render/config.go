package render

import (
	"fmt"
	"io"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// RenderConfig renders the stored config followed by the effective context
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if result.Exists {
		fmt.Fprintln(r.out, "📋 Current config:")
		for _, key := range domain.ValidConfigKeys() {
			value := result.Config.Get(key)
			if value == "" {
				value = "(not set)"
			}
			fmt.Fprintf(r.out, "%-10s %s\n", string(key)+":", value)
		}
		fmt.Fprintf(r.out, "\n📁 config file: %s\n\n", relativePath(result.ConfigPath))
	} else {
		fmt.Fprintf(r.out, "❌ No %s file found\n\n", relativePath(result.ConfigPath))
	}

	r.renderEffective(result.Effective)
	return nil
}

func (r *ConfigRenderer) renderEffective(eff usecase.EffectiveContext) {
	fmt.Fprintln(r.out, "🎯 Deploying with:")
	fmt.Fprintf(r.out, "%-10s %s\n", "namespace:", eff.Namespace)
	if eff.Network != "" {
		fmt.Fprintf(r.out, "%-10s %s (chain %d)\n", "network:", eff.Network, eff.ChainID)
	} else {
		fmt.Fprintf(r.out, "%-10s %s\n", "network:", "(not set, pass --network)")
	}

	sender := eff.Sender
	switch {
	case !sender.Defined:
		fmt.Fprintf(r.out, "%-10s %s\n", "sender:", FormatWarning(fmt.Sprintf("%s is not defined in desiege.toml", sender.Name)))
	case sender.Address == "":
		fmt.Fprintf(r.out, "%-10s %s (%s, address unknown)\n", "sender:", sender.Name, sender.Type)
	default:
		fmt.Fprintf(r.out, "%-10s %s (%s) %s\n", "sender:", sender.Name, sender.Type, sender.Address)
	}
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case domain.ConfigKeyNamespace:
		fmt.Fprintf(r.out, "✅ Reset namespace to: default\n")
	case domain.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (will be required as flag)\n")
	default:
		fmt.Fprintf(r.out, "✅ Removed %s from config\n", result.Key)
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}
