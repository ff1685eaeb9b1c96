package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mailadapter/pkg/mailer"
	"github.com/dmitrymomot/mailadapter/pkg/mailer/templates"
	"github.com/dmitrymomot/mailadapter/pkg/preview"
)

// propsFlags are shared by render and serve.
type propsFlags struct {
	file         string
	link         string
	appName      string
	brandLogoURL string
	brandColor   string
}

func (f *propsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "props", "", "YAML file with template props")
	cmd.Flags().StringVar(&f.link, "link", "", "action link")
	cmd.Flags().StringVar(&f.appName, "app-name", "", "application name")
	cmd.Flags().StringVar(&f.brandLogoURL, "brand-logo-url", "", "brand logo URL (default MAIL_BRAND_LOGO_URL)")
	cmd.Flags().StringVar(&f.brandColor, "brand-color", "", "brand colour (default MAIL_BRAND_COLOR)")
}

// resolve layers props: environment branding, then the props file, then flags.
func (f *propsFlags) resolve(a *app) (templates.Props, error) {
	p := templates.Props{
		BrandLogoURL: a.cfg.Resend.BrandLogoURL,
		BrandColor:   a.cfg.Resend.BrandColor,
	}

	if f.file != "" {
		fp, err := preview.LoadProps(f.file)
		if err != nil {
			return templates.Props{}, err
		}
		p = overlay(p, fp)
	}

	return overlay(p, templates.Props{
		Link:         f.link,
		AppName:      f.appName,
		BrandLogoURL: f.brandLogoURL,
		BrandColor:   f.brandColor,
	}), nil
}

func overlay(base, top templates.Props) templates.Props {
	if top.Link != "" {
		base.Link = top.Link
	}
	if top.AppName != "" {
		base.AppName = top.AppName
	}
	if top.BrandLogoURL != "" {
		base.BrandLogoURL = top.BrandLogoURL
	}
	if top.BrandColor != "" {
		base.BrandColor = top.BrandColor
	}
	return base
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		props     propsFlags
		format    string
		all       bool
		outDir    string
		omitLinks bool
	)

	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Render a built-in template",
		Long: "Render a built-in template to stdout, or every template into a directory with --all. " +
			"Templates: " + strings.Join(templates.Names(), ", "),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: templates.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := props.resolve(a)
			if err != nil {
				return err
			}

			r := mailer.NewRendererWithOptions(html2text.Options{OmitLinks: omitLinks})

			if all {
				if len(args) > 0 {
					return errors.New("--all does not take a template name")
				}
				if outDir == "" {
					return errors.New("--all requires --out")
				}
				if err := renderAll(cmd.Context(), r, p, outDir); err != nil {
					return err
				}
				a.log.InfoContext(cmd.Context(), "templates rendered", slog.String("dir", outDir))
				return nil
			}

			if len(args) != 1 {
				return errors.New("template name is required")
			}
			tmpl, ok := templates.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q (available: %s)", args[0], strings.Join(templates.Names(), ", "))
			}

			mode, err := parseFormat(format)
			if err != nil {
				return err
			}

			out, err := r.Render(cmd.Context(), tmpl(p), mode)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	props.register(cmd)
	cmd.Flags().StringVar(&format, "format", "html", "output format: html or text")
	cmd.Flags().BoolVar(&all, "all", false, "render every template in both formats")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory for --all")
	cmd.Flags().BoolVar(&omitLinks, "omit-links", false, "drop link targets from plain text output")

	return cmd
}

func parseFormat(format string) (mailer.Mode, error) {
	switch format {
	case "html":
		return mailer.ModeHTML, nil
	case "text":
		return mailer.ModePlainText, nil
	default:
		return 0, fmt.Errorf("unknown format %q, use html or text", format)
	}
}

// renderAll writes <name>.html and <name>.txt for every template.
// Each file gets its own component, so the renders run concurrently.
func renderAll(ctx context.Context, r mailer.Renderer, p templates.Props, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	outputs := []struct {
		ext  string
		mode mailer.Mode
	}{
		{ext: ".html", mode: mailer.ModeHTML},
		{ext: ".txt", mode: mailer.ModePlainText},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range templates.Names() {
		tmpl, _ := templates.Lookup(name)
		for _, o := range outputs {
			g.Go(func() error {
				out, err := r.Render(gctx, tmpl(p), o.mode)
				if err != nil {
					return fmt.Errorf("render %s%s: %w", name, o.ext, err)
				}
				return os.WriteFile(filepath.Join(dir, name+o.ext), []byte(out), 0o644)
			})
		}
	}
	return g.Wait()
}
