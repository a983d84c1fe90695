package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/planfile"
	"github.com/alexanderramin/splanner/internal/render"
)

// exportFormat is the --format flag value of the export command.
type exportFormat string

const (
	formatText exportFormat = "text"
	formatHTML exportFormat = "html"
	formatMD   exportFormat = "md"
	formatJSON exportFormat = "json"
)

var exportFormats = []exportFormat{formatText, formatHTML, formatMD, formatJSON}

var _ pflag.Value = (*exportFormat)(nil)

func (f *exportFormat) String() string {
	return string(*f)
}

func (f *exportFormat) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, known := range exportFormats {
		if v == string(known) {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("must be one of text, html, md, json")
}

func (f *exportFormat) Type() string {
	return "format"
}

// renderPlan renders plan in the given format.
func renderPlan(plan domain.LessonPlan, format exportFormat, width int) ([]byte, error) {
	switch format {
	case formatText:
		return []byte(render.RenderText(plan, render.Options{Width: width})), nil
	case formatHTML:
		return render.RenderHTML(plan)
	case formatMD:
		return []byte(render.RenderMarkdown(plan)), nil
	case formatJSON:
		var buf bytes.Buffer
		if err := planfile.Encode(&buf, plan); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

func newExportCmd(app *App) *cobra.Command {
	var (
		planPath string
		out      string
		width    int
	)
	format := formatHTML

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Xuất giáo án (text, html, md, json)",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := planfile.Load(planPath)
			if err != nil {
				return err
			}
			data, err := renderPlan(plan, format, width)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Đã xuất %s: %s\n", formatter.StyleGreen.Render("✔"), format, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", defaultPlanPath, "plan document")
	cmd.Flags().Var(&format, "format", "output format: text|html|md|json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&width, "width", render.DefaultWidth, "text width for --format text")

	return cmd
}
