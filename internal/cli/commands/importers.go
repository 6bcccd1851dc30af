package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/stylebridge/internal/cli/output"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
	_ "github.com/leapstack-labs/stylebridge/pkg/importer/modules" // register importers
)

// ImportersOptions holds options for the importers command.
type ImportersOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewImportersCommand creates the importers command.
func NewImportersCommand() *cobra.Command {
	opts := &ImportersOptions{}
	cmd := &cobra.Command{
		Use:   "importers [name]",
		Short: "List available check importers",
		Long: `List every registered check importer with the properties it understands.

Importers are organized by group (e.g., imports, whitespace).

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all importers
  stylebridge importers

  # Show details for one importer
  stylebridge importers ImportOrder

  # List whitespace importers as JSON
  stylebridge importers --group whitespace --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
			if cfg, err := NewCommandContext(cmd); err == nil {
				r = cfg.Renderer
			}
			r = withFormat(cmd, r, opts.Format)

			if len(args) > 0 {
				return showImporter(r, args[0])
			}
			return listImporters(r, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

func listImporters(r *output.Renderer, opts *ImportersOptions) error {
	var defs []importer.Def
	if opts.Group != "" {
		defs = importer.ByGroup(opts.Group)
	} else {
		defs = importer.All()
	}

	infos := make([]importer.Info, len(defs))
	for i, d := range defs {
		infos[i] = d.Info()
	}
	// All and ByGroup sort by name; listings read better grouped.
	sortInfosByGroup(infos)

	if ok, err := r.Structured(infos); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		listImportersMarkdown(r, infos)
		return nil
	}
	listImportersText(r, infos)
	return nil
}

func sortInfosByGroup(infos []importer.Info) {
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Group < infos[j].Group
	})
}

func listImportersText(r *output.Renderer, infos []importer.Info) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Importers (%d)", len(infos))))
	r.Println("")

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{output.Title(info.Group), info.Name, info.Description}
	}
	r.Table([]string{"Group", "Name", "Description"}, rows)

	r.Println("")
	r.Println(styles.Muted.Render("Use 'stylebridge importers <name>' for the accepted properties"))
	r.Println("")
}

func listImportersMarkdown(r *output.Renderer, infos []importer.Info) {
	r.Println("# Importers")
	r.Println("")

	currentGroup := ""
	for _, info := range infos {
		if info.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = info.Group
			r.Println("## " + output.Title(currentGroup))
			r.Println("")
		}
		r.Printf("- **%s** - %s\n", info.Name, info.Description)
	}
}

func showImporter(r *output.Renderer, name string) error {
	def, ok := importer.Get(name)
	if !ok {
		return fmt.Errorf("importer %q not found", name)
	}
	info := def.Info()

	if ok, err := r.Structured(info); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, info.Name))
		r.Println("")
		r.Println(info.Description)
		r.Println("")
		r.Println(output.FormatKeyValue("Group", output.Title(info.Group)))
		r.Println(output.FormatKeyValue("Properties", "`"+strings.Join(info.ConfigKeys, "`, `")+"`"))
		return nil
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render(info.Name) + "  " + styles.Muted.Render(output.Title(info.Group)))
	r.Println("")
	r.Println("  " + info.Description)
	r.Println("")
	r.Println(styles.Header2.Render("Properties"))
	for _, key := range info.ConfigKeys {
		r.Println("  " + key)
	}
	r.Println("")
	return nil
}
