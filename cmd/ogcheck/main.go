// ogcheck — печатает ссылки на отладчики превью (Facebook, LinkedIn,
// OpenGraph.xyz, Metatags.io) для страницы сайта. С флагом --inspect
// дополнительно загружает страницу и показывает её og:*/twitter:* мета-теги.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bigkaa/portfolio-site/internal/config"
	"github.com/bigkaa/portfolio-site/internal/ogcheck"
)

// errUsage — команда вызвана без URL (или с пустым URL), usage уже напечатан.
var errUsage = errors.New("не указан URL страницы")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run выполняет CLI и возвращает код выхода: 0 — успех, 1 — ошибка или нет аргумента.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, color.RedString("Ошибка:"), err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		inspect bool
		timeout time.Duration
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "ogcheck <url>",
		Short: "Ссылки на отладчики превью страницы в соцсетях",
		Long: `ogcheck печатает ссылки на Facebook Sharing Debugger, LinkedIn Post Inspector,
OpenGraph.xyz и Metatags.io для указанной страницы. Сам ничего не загружает,
если не указан --inspect.`,
		Example: `  ogcheck https://nordlight.studio/en/
  ogcheck --inspect https://nordlight.studio/ru/portfolio`,
		Args:          cobra.ArbitraryArgs,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			// Используется только первый аргумент, остальные игнорируются.
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				cmd.SetOut(stderr)
				_ = cmd.Usage()
				return errUsage
			}
			target := strings.TrimSpace(args[0])

			printLinks(stdout, target)

			if !inspect {
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return printMetaTags(ctx, stdout, target, timeout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVar(&inspect, "inspect", false, "загрузить страницу и показать og:* и twitter:* мета-теги")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "таймаут загрузки страницы для --inspect")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "выключить цветной вывод")

	return cmd
}

func printLinks(w io.Writer, target string) {
	label := color.New(color.FgCyan, color.Bold)

	fmt.Fprintf(w, "Проверка превью для %s\n\n", target)
	for _, l := range ogcheck.Links(target) {
		fmt.Fprintf(w, "  %s\n    %s\n", label.Sprint(l.Name), l.URL)
	}
}

func printMetaTags(ctx context.Context, w io.Writer, target string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}
	tags, err := ogcheck.Inspect(ctx, client, target, "ogcheck/"+config.Version)
	if err != nil {
		return err
	}

	key := color.New(color.FgGreen)
	fmt.Fprintf(w, "\nМета-теги превью (%d):\n", len(tags))
	if len(tags) == 0 {
		fmt.Fprintln(w, color.YellowString("  og:* и twitter:* теги не найдены"))
		return nil
	}
	for _, t := range tags {
		fmt.Fprintf(w, "  %s = %s\n", key.Sprint(t.Key), t.Content)
	}
	return nil
}
