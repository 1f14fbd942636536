package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nerdneilsfield/go-editor-lang/internal/config"
	"github.com/nerdneilsfield/go-editor-lang/pkg/languages"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

func newListCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "按检测顺序列出所有格式",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			langs := a.registry.All()

			if a.cfg.OutputFormat == config.OutputJSON {
				return writeLanguagesJSON(out, langs, a.registry.Fallback())
			}
			writeLanguagesTable(out, langs, a.registry.Fallback())
			return nil
		},
	}

	cmd.Flags().StringVarP(&a.opts.output, "output", "o", config.OutputTable, "输出格式: table 或 json")
	return cmd
}

func writeLanguagesTable(w io.Writer, langs []languages.Language, fallback languages.Language) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintln(w, "支持的格式:")

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Label", "Mode", "Wrap", "Fallback"})
	for i, lang := range langs {
		t.AppendRow(table.Row{
			i + 1,
			lang.Name(),
			lang.Label(),
			lang.EditorMode()["name"],
			lang.WrapByDefault(),
			lang == fallback,
		})
	}
	t.Render()
}

// writeLanguagesJSON 输出 JSON 数组，并用 json 处理器美化
func writeLanguagesJSON(w io.Writer, langs []languages.Language, fallback languages.Language) error {
	doc := "[]"
	for _, lang := range langs {
		fields := []struct {
			key   string
			value any
		}{
			{"name", lang.Name()},
			{"label", lang.Label()},
			{"editorMode", map[string]any(lang.EditorMode())},
			{"wrapByDefault", lang.WrapByDefault()},
			{"fallback", lang == fallback},
		}

		item := "{}"
		for _, f := range fields {
			var err error
			if item, err = sjson.Set(item, f.key, f.value); err != nil {
				return fmt.Errorf("failed to encode %s: %w", lang.Name(), err)
			}
		}

		var err error
		if doc, err = sjson.SetRaw(doc, "-1", item); err != nil {
			return fmt.Errorf("failed to encode %s: %w", lang.Name(), err)
		}
	}

	jsonLang, ok := languages.ByName("json")
	if !ok {
		_, err := fmt.Fprintln(w, doc)
		return err
	}

	pretty, err := jsonLang.Beautify(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, pretty)
	return err
}
